package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
	"taskdeck/pkg/datemath"
)

const dueDateLayout = "2006-01-02"

var (
	priorityRing = []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	categoryRing = []model.Category{model.CategoryWork, model.CategoryPersonal, model.CategoryStudy, model.CategoryOther}
)

// taskForm edits one task. Title is the only required field; the due
// date is a calendar date with no time of day.
type taskForm struct {
	id          string
	title       textinput.Model
	description textinput.Model
	dueDate     textinput.Model
	priority    int // index into priorityRing
	category    int // index into categoryRing
	focus       int // 0 title, 1 description, 2 priority, 3 category, 4 due date
	err         string
	busy        bool
}

func newTaskForm(existing *model.Task) taskForm {
	title := textinput.New()
	title.Placeholder = "task title"
	title.CharLimit = 100
	title.Focus()

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.CharLimit = 500

	dueDate := textinput.New()
	dueDate.Placeholder = "YYYY-MM-DD or tomorrow (optional)"
	dueDate.CharLimit = 20

	f := taskForm{
		title:       title,
		description: description,
		dueDate:     dueDate,
		priority:    ringIndex(priorityRing, model.PriorityMedium),
		category:    ringIndex(categoryRing, model.CategoryPersonal),
	}

	if existing != nil {
		f.id = existing.ID
		f.title.SetValue(existing.Title)
		f.description.SetValue(existing.Description)
		f.priority = ringIndex(priorityRing, existing.Priority)
		f.category = ringIndex(categoryRing, existing.Category)
		if existing.DueDate != nil {
			f.dueDate.SetValue(existing.DueDate.Format(dueDateLayout))
		}
	}
	return f
}

func ringIndex[T comparable](ring []T, v T) int {
	for i, item := range ring {
		if item == v {
			return i
		}
	}
	return 0
}

// submit validates locally and builds the full editable field set;
// the client always sends every field on save, not a diff.
func (f taskForm) submit() (task.SaveInput, string) {
	if f.title.Value() == "" {
		return task.SaveInput{}, "Title is required."
	}

	in := task.SaveInput{
		ID:          f.id,
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Priority:    priorityRing[f.priority],
		Category:    categoryRing[f.category],
	}

	if raw := f.dueDate.Value(); raw != "" {
		due, err := datemath.Parse(raw, time.Now())
		if err != nil {
			return task.SaveInput{}, "Due date must be a date like 2026-09-01, or e.g. tomorrow."
		}
		in.DueDate = &due
	}
	return in, ""
}

func (f taskForm) update(msg tea.KeyMsg) (taskForm, bool) {
	if f.busy {
		return f, false
	}

	switch msg.String() {
	case "tab", "down":
		f = f.setFocus((f.focus + 1) % 5)
		return f, false
	case "shift+tab", "up":
		f = f.setFocus((f.focus + 4) % 5)
		return f, false
	case "enter", "ctrl+s":
		if msg.String() == "enter" && f.focus < 4 {
			f = f.setFocus(f.focus + 1)
			return f, false
		}
		if _, problem := f.submit(); problem != "" {
			f.err = problem
			return f, false
		}
		f.err = ""
		f.busy = true
		return f, true
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch f.focus {
		case 2:
			f.priority = (f.priority + delta + len(priorityRing)) % len(priorityRing)
			return f, false
		case 3:
			f.category = (f.category + delta + len(categoryRing)) % len(categoryRing)
			return f, false
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.title, cmd = f.title.Update(msg)
	case 1:
		f.description, cmd = f.description.Update(msg)
	case 4:
		f.dueDate, cmd = f.dueDate.Update(msg)
	}
	_ = cmd
	return f, false
}

func (f taskForm) setFocus(i int) taskForm {
	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()
	switch i {
	case 0:
		f.title.Focus()
	case 1:
		f.description.Focus()
	case 4:
		f.dueDate.Focus()
	}
	f.focus = i
	return f
}

func (f taskForm) fail(message string) taskForm {
	f.busy = false
	f.err = message
	return f
}

func (f taskForm) view(s Styles) string {
	heading := "New task"
	if f.id != "" {
		heading = "Edit task"
	}

	selector := func(focused bool, label string) string {
		if focused {
			return s.Selected.Render(fmt.Sprintf("‹ %s ›", label))
		}
		return label
	}

	out := s.Title.Render(heading) + "\n\n"
	out += s.FieldLabel.Render("Title") + "\n" + f.title.View() + "\n\n"
	out += s.FieldLabel.Render("Description") + "\n" + f.description.View() + "\n\n"
	out += s.FieldLabel.Render("Priority") + "  " + selector(f.focus == 2, string(priorityRing[f.priority])) + "\n"
	out += s.FieldLabel.Render("Category") + "  " + selector(f.focus == 3, string(categoryRing[f.category])) + "\n\n"
	out += s.FieldLabel.Render("Due date") + "\n" + f.dueDate.View() + "\n\n"
	if f.err != "" {
		out += s.FormError.Render(f.err) + "\n\n"
	}
	if f.busy {
		out += s.Muted.Render("Saving...") + "\n"
	} else {
		out += s.Help.Render("ctrl+s: save · left/right: change value · esc: cancel") + "\n"
	}
	return out
}
