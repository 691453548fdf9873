package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginForm collects email and password. Validation runs locally
// before any network call; the submit action is disabled while a
// login request is in flight.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	err      string
	busy     bool
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100
	email.Focus()

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return loginForm{email: email, password: password}
}

// update handles one key event. It returns the updated form and, when
// the user submitted a locally valid form, true.
func (f loginForm) update(msg tea.KeyMsg) (loginForm, bool) {
	if f.busy {
		return f, false
	}

	switch msg.String() {
	case "tab", "down":
		f = f.setFocus((f.focus + 1) % 2)
		return f, false
	case "shift+tab", "up":
		f = f.setFocus((f.focus + 1) % 2)
		return f, false
	case "enter":
		if f.focus == 0 {
			f = f.setFocus(1)
			return f, false
		}
		if f.email.Value() == "" || f.password.Value() == "" {
			f.err = "Email and password are required."
			return f, false
		}
		f.err = ""
		f.busy = true
		return f, true
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	_ = cmd
	return f, false
}

func (f loginForm) setFocus(i int) loginForm {
	f.focus = i
	if i == 0 {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.email.Blur()
		f.password.Focus()
	}
	return f
}

// fail re-enables the form and shows the returned message inline,
// keeping the entered values for correction.
func (f loginForm) fail(message string) loginForm {
	f.busy = false
	f.err = message
	return f
}

func (f loginForm) view(s Styles) string {
	out := s.Title.Render("Sign in") + "\n\n"
	out += s.FieldLabel.Render("Email") + "\n" + f.email.View() + "\n\n"
	out += s.FieldLabel.Render("Password") + "\n" + f.password.View() + "\n\n"
	if f.err != "" {
		out += s.FormError.Render(f.err) + "\n\n"
	}
	if f.busy {
		out += s.Muted.Render("Signing in...") + "\n"
	} else {
		out += s.Help.Render("enter: sign in · ctrl+r: create an account · ctrl+c: quit") + "\n"
	}
	return out
}
