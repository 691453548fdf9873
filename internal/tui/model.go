package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/model"
	"taskdeck/internal/notify"
	"taskdeck/internal/session"
	"taskdeck/internal/task"
	pkgLog "taskdeck/pkg/log"
	"taskdeck/pkg/taskapi"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenList
	screenForm
)

// Model is the presentation shell. It owns top-level state: which
// screen renders, the shell error banner, and the loading flag.
type Model struct {
	l       pkgLog.Logger
	session *session.Store
	uc      task.UseCase
	poller  *notify.Poller

	keys   keyMap
	theme  model.Theme
	styles Styles

	screen    screen
	login     loginForm
	register  registerForm
	form      taskForm
	list      listState
	panel     panelState
	panelOpen bool

	banner  string // shell-level error, list operations only
	loading bool
	width   int
	height  int
}

// NotificationsChanged is sent into the program by the poller's
// onChange hook so background cache updates re-render the badge.
func NotificationsChanged() tea.Msg { return notificationsChangedMsg{} }

// NewModel builds the shell. An existing durable session skips the
// auth screens entirely.
func NewModel(l pkgLog.Logger, sess *session.Store, uc task.UseCase, poller *notify.Poller) Model {
	m := Model{
		l:        l,
		session:  sess,
		uc:       uc,
		poller:   poller,
		keys:     newKeyMap(),
		theme:    sess.Theme(),
		login:    newLoginForm(),
		register: newRegisterForm(),
		list:     newListState(),
		screen:   screenLogin,
		width:    100,
		height:   32,
	}
	m.styles = stylesFor(m.theme)
	if sess.IsAuthenticated() {
		m.screen = screenList
		m.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenList {
		return m.reloadCmd()
	}
	return nil
}

// errMessage picks the surfaceable text: backend messages verbatim,
// local validation sentinels as-is.
func errMessage(err error) string {
	var apiErr *taskapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginDoneMsg:
		if msg.err != nil {
			m.login = m.login.fail(errMessage(msg.err))
			return m, nil
		}
		m.banner = ""
		m.screen = screenList
		m.loading = true
		m.login = newLoginForm()
		m.register = newRegisterForm()
		return m, m.reloadCmd()

	case registerDoneMsg:
		if msg.err != nil {
			m.register = m.register.fail(errMessage(msg.err))
			return m, nil
		}
		// Account created; establish the session with the same
		// credentials.
		return m, m.loginCmd(msg.email, msg.password)

	case tasksReloadedMsg:
		m.loading = false
		if msg.err != nil {
			m.banner = errMessage(msg.err)
			if taskapi.IsAuthError(msg.err) {
				return m.forceLogout(), nil
			}
			return m, nil
		}
		m.banner = ""
		m.list = m.list.clampCursor(len(m.uc.Visible(m.list.criteria)))
		return m, nil

	case taskSavedMsg:
		if msg.err != nil {
			m.form = m.form.fail(errMessage(msg.err))
			return m, nil
		}
		m.screen = screenList
		return m, nil

	case taskDeletedMsg:
		if msg.err != nil {
			m.banner = errMessage(msg.err)
			return m, nil
		}
		m.banner = ""
		m.list = m.list.clampCursor(len(m.uc.Visible(m.list.criteria)))
		return m, nil

	case taskToggledMsg:
		if msg.err != nil {
			m.banner = errMessage(msg.err)
			return m, nil
		}
		m.banner = ""
		return m, nil

	case notificationsChangedMsg:
		m.panel = m.panel.clampCursor(len(m.poller.Notifications()))
		return m, nil

	case notifyOpDoneMsg:
		// Poll and panel failures are logged by the poller and never
		// reach the shell banner.
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		if msg.String() == "ctrl+r" {
			m.screen = screenRegister
			return m, nil
		}
		var submit bool
		m.login, submit = m.login.update(msg)
		if submit {
			return m, m.loginCmd(m.login.email.Value(), m.login.password.Value())
		}
		return m, nil

	case screenRegister:
		if msg.String() == "ctrl+r" {
			m.screen = screenLogin
			return m, nil
		}
		var submit bool
		m.register, submit = m.register.update(msg)
		if submit {
			return m, m.registerCmd(m.register.input())
		}
		return m, nil

	case screenForm:
		if msg.String() == "esc" && !m.form.busy {
			m.screen = screenList
			return m, nil
		}
		var submit bool
		m.form, submit = m.form.update(msg)
		if submit {
			in, _ := m.form.submit()
			return m, m.saveCmd(in)
		}
		return m, nil
	}

	if m.panelOpen {
		return m.handlePanelKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		m.list = m.list.updateSearch(msg)
		m.list = m.list.clampCursor(len(m.uc.Visible(m.list.criteria)))
		return m, nil
	}

	visible := m.uc.Visible(m.list.criteria)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.list.cursor < len(visible)-1 {
			m.list.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.form = newTaskForm(nil)
		m.screen = screenForm
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if m.list.cursor < len(visible) {
			t := visible[m.list.cursor]
			m.form = newTaskForm(&t)
			m.screen = screenForm
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if m.list.cursor < len(visible) {
			return m, m.deleteCmd(visible[m.list.cursor].ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if m.list.cursor < len(visible) {
			t := visible[m.list.cursor]
			return m, m.toggleCmd(t.ID, !t.Completed)
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.list.searching = true
		m.list.search.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Category):
		m.list.criteria.Category = cycle(categoryFilterRing, m.list.criteria.Category)
		m.list = m.list.clampCursor(len(m.uc.Visible(m.list.criteria)))
		return m, nil
	case key.Matches(msg, m.keys.Priority):
		m.list.criteria.Priority = cycle(priorityFilterRing, m.list.criteria.Priority)
		m.list = m.list.clampCursor(len(m.uc.Visible(m.list.criteria)))
		return m, nil
	case key.Matches(msg, m.keys.Status):
		m.list.criteria.Status = cycle(statusFilterRing, m.list.criteria.Status)
		m.list = m.list.clampCursor(len(m.uc.Visible(m.list.criteria)))
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.list.criteria.SortBy = cycle(sortRing, m.list.criteria.SortBy)
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.reloadCmd()
	case key.Matches(msg, m.keys.Panel):
		m.panelOpen = true
		return m, m.setPanelOpenCmd(true)
	case key.Matches(msg, m.keys.Theme):
		if m.theme == model.ThemeDark {
			m.theme = model.ThemeLight
		} else {
			m.theme = model.ThemeDark
		}
		m.styles = stylesFor(m.theme)
		return m, m.persistThemeCmd(m.theme)
	case key.Matches(msg, m.keys.Logout):
		return m.logoutNow(), nil
	}
	return m, nil
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notifications := m.poller.Notifications()

	switch msg.String() {
	case "esc", "n", "q":
		m.panelOpen = false
		return m, m.setPanelOpenCmd(false)
	case "up", "k":
		if m.panel.cursor > 0 {
			m.panel.cursor--
		}
		return m, nil
	case "down", "j":
		if m.panel.cursor < len(notifications)-1 {
			m.panel.cursor++
		}
		return m, nil
	case "enter":
		if m.panel.cursor < len(notifications) {
			return m, m.markReadCmd(notifications[m.panel.cursor].ID)
		}
		return m, nil
	case "A":
		return m, m.markAllReadCmd()
	case "d":
		if m.panel.cursor < len(notifications) {
			return m, m.deleteNotificationCmd(notifications[m.panel.cursor].ID)
		}
		return m, nil
	}
	return m, nil
}

// logoutNow clears the session synchronously and returns to the auth
// screens.
func (m Model) logoutNow() Model {
	m.session.Logout(context.Background())
	return m.forceLogout()
}

func (m Model) forceLogout() Model {
	m.screen = screenLogin
	m.login = newLoginForm()
	m.register = newRegisterForm()
	m.list = newListState()
	m.panelOpen = false
	m.loading = false
	return m
}

func (m Model) View() string {
	s := m.styles
	header := s.Title.Render("taskdeck")

	if user, ok := m.session.CurrentUser(); ok {
		header += "  " + s.Header.Render(user.Username)
	}
	if unread := m.poller.Unread(); unread > 0 {
		header += "  " + s.Badge.Render(strconv.Itoa(unread))
	}

	out := header + "\n\n"
	if m.banner != "" {
		out += s.Banner.Render("! "+m.banner) + "\n\n"
	}

	switch m.screen {
	case screenLogin:
		return out + m.login.view(s)
	case screenRegister:
		return out + m.register.view(s)
	case screenForm:
		return out + m.form.view(s)
	}

	out += m.list.view(s, m.uc.Visible(m.list.criteria), m.loading)
	if m.panelOpen {
		out += "\n" + m.panel.view(s, m.poller.Notifications())
	} else {
		out += "\n" + s.Help.Render("a: add · e: edit · d: delete · space: done · /: search · c/p/s/o: filters · n: notifications · r: refresh · t: theme · L: logout · q: quit")
	}
	return out
}
