package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
)

var (
	categoryFilterRing = []task.CategoryFilter{
		task.CategoryAll,
		task.CategoryFilter(model.CategoryWork),
		task.CategoryFilter(model.CategoryPersonal),
		task.CategoryFilter(model.CategoryStudy),
		task.CategoryFilter(model.CategoryOther),
	}
	priorityFilterRing = []task.PriorityFilter{
		task.PriorityAll,
		task.PriorityFilter(model.PriorityHigh),
		task.PriorityFilter(model.PriorityMedium),
		task.PriorityFilter(model.PriorityLow),
	}
	statusFilterRing = []task.StatusFilter{task.StatusAll, task.StatusActive, task.StatusCompleted}
	sortRing         = []task.SortKey{task.SortByDueDate, task.SortByPriority, task.SortByTitle}
)

// listState is the task-list screen: cursor, the ephemeral criteria,
// and the search input. Criteria reset on restart by design.
type listState struct {
	cursor    int
	criteria  task.Criteria
	searching bool
	search    textinput.Model
}

func newListState() listState {
	search := textinput.New()
	search.Placeholder = "search tasks"
	search.CharLimit = 100
	return listState{
		criteria: task.Criteria{
			Category: task.CategoryAll,
			Priority: task.PriorityAll,
			Status:   task.StatusAll,
			SortBy:   task.SortByDueDate,
		},
		search: search,
	}
}

func cycle[T comparable](ring []T, current T) T {
	for i, v := range ring {
		if v == current {
			return ring[(i+1)%len(ring)]
		}
	}
	return ring[0]
}

// updateSearch feeds key events into the search input while it has
// focus. The criteria track the input live.
func (ls listState) updateSearch(msg tea.KeyMsg) listState {
	switch msg.String() {
	case "enter", "esc":
		ls.searching = false
		ls.search.Blur()
		if msg.String() == "esc" {
			ls.search.SetValue("")
			ls.criteria.Search = ""
		}
		return ls
	}

	var cmd tea.Cmd
	ls.search, cmd = ls.search.Update(msg)
	_ = cmd
	ls.criteria.Search = ls.search.Value()
	return ls
}

func (ls listState) clampCursor(visible int) listState {
	if ls.cursor >= visible {
		ls.cursor = visible - 1
	}
	if ls.cursor < 0 {
		ls.cursor = 0
	}
	return ls
}

func renderTaskLine(s Styles, t model.Task, selected bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	due := ""
	if t.DueDate != nil {
		due = "  due " + t.DueDate.Format(dueDateLayout)
	}

	priority := s.Low
	switch t.Priority {
	case model.PriorityHigh:
		priority = s.High
	case model.PriorityMedium:
		priority = s.Medium
	}

	line := fmt.Sprintf("%s %s %s%s  %s",
		check,
		priority.Render(string(t.Priority)),
		t.Title,
		s.Muted.Render(due),
		s.Muted.Render("#"+string(t.Category)),
	)
	if t.Completed {
		line = s.Done.Render(line)
	}
	if selected {
		return s.Selected.Render("› ") + line
	}
	return "  " + line
}

func (ls listState) view(s Styles, visible []model.Task, loading bool) string {
	out := fmt.Sprintf("%s  %s  %s  %s\n",
		s.Muted.Render("category:"+string(ls.criteria.Category)),
		s.Muted.Render("priority:"+string(ls.criteria.Priority)),
		s.Muted.Render("status:"+string(ls.criteria.Status)),
		s.Muted.Render("sort:"+string(ls.criteria.SortBy)),
	)

	if ls.searching {
		out += ls.search.View() + "\n"
	} else if ls.criteria.Search != "" {
		out += s.Muted.Render("search: "+ls.criteria.Search) + "\n"
	}
	out += "\n"

	if loading {
		out += s.Muted.Render("Loading tasks...") + "\n"
		return out
	}

	if len(visible) == 0 {
		if ls.criteria.Search != "" || ls.criteria.Category != task.CategoryAll ||
			ls.criteria.Priority != task.PriorityAll || ls.criteria.Status != task.StatusAll {
			out += s.Muted.Render("No tasks match the current filters.") + "\n"
		} else {
			out += s.Muted.Render("No tasks yet. Press a to add one.") + "\n"
		}
		return out
	}

	for i, t := range visible {
		out += renderTaskLine(s, t, i == ls.cursor) + "\n"
	}
	return out
}
