package task

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskdeck/internal/model"
)

// Apply projects tasks through the criteria: the four filter
// predicates are conjunctive, and sorting runs on the filtered set
// only. The input slice is never mutated and ties keep their incoming
// order.
func (c Criteria) Apply(tasks []model.Task) []model.Task {
	query := strings.ToLower(c.Search)

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matches(t, query) {
			out = append(out, t)
		}
	}

	c.sortTasks(out)
	return out
}

func (c Criteria) matches(t model.Task, query string) bool {
	if query != "" &&
		!strings.Contains(strings.ToLower(t.Title), query) &&
		!strings.Contains(strings.ToLower(t.Description), query) {
		return false
	}
	if c.Category != "" && c.Category != CategoryAll && string(c.Category) != string(t.Category) {
		return false
	}
	if c.Priority != "" && c.Priority != PriorityAll && string(c.Priority) != string(t.Priority) {
		return false
	}
	switch c.Status {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	}
	return true
}

func (c Criteria) sortTasks(tasks []model.Task) {
	switch c.SortBy {
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		})
	case SortByTitle:
		coll := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(tasks, func(i, j int) bool {
			return coll.CompareString(tasks[i].Title, tasks[j].Title) < 0
		})
	default:
		// Due date ascending; undated tasks sort after all dated ones.
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	}
}
