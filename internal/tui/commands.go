package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/task"
)

// Messages delivered back to the model when an async operation
// settles. Errors ride along; the screen that issued the command
// decides where they surface.
type (
	loginDoneMsg struct {
		user model.User
		err  error
	}
	registerDoneMsg struct {
		email    string
		password string
		err      error
	}
	tasksReloadedMsg struct {
		tasks []model.Task
		err   error
	}
	taskSavedMsg struct {
		task model.Task
		err  error
	}
	taskDeletedMsg struct {
		id  string
		err error
	}
	taskToggledMsg struct {
		task model.Task
		err  error
	}
	// notificationsChangedMsg arrives whenever the poller's cache
	// moves, including from the background timer.
	notificationsChangedMsg struct{}
	notifyOpDoneMsg         struct{ err error }
)

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Login(context.Background(), email, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m Model) registerCmd(in registerInput) tea.Cmd {
	return func() tea.Msg {
		err := m.session.Register(context.Background(), in.toSession())
		return registerDoneMsg{email: in.email, password: in.password, err: err}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.uc.Reload(context.Background())
		return tasksReloadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) saveCmd(in task.SaveInput) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.uc.Save(context.Background(), in)
		return taskSavedMsg{task: saved, err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.uc.Delete(context.Background(), id)
		return taskDeletedMsg{id: id, err: err}
	}
}

func (m Model) toggleCmd(id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.uc.ToggleComplete(context.Background(), id, completed)
		return taskToggledMsg{task: updated, err: err}
	}
}

func (m Model) persistThemeCmd(theme model.Theme) tea.Cmd {
	return func() tea.Msg {
		m.session.SetTheme(context.Background(), theme)
		return nil
	}
}

func (m Model) setPanelOpenCmd(open bool) tea.Cmd {
	return func() tea.Msg {
		m.poller.SetPanelOpen(context.Background(), open)
		return notificationsChangedMsg{}
	}
}

func (m Model) markReadCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return notifyOpDoneMsg{err: m.poller.MarkRead(context.Background(), id)}
	}
}

func (m Model) markAllReadCmd() tea.Cmd {
	return func() tea.Msg {
		return notifyOpDoneMsg{err: m.poller.MarkAllRead(context.Background())}
	}
}

func (m Model) deleteNotificationCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return notifyOpDoneMsg{err: m.poller.Delete(context.Background(), id)}
	}
}
