package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/session"
)

type registerInput struct {
	username string
	email    string
	password string
	confirm  string
}

func (in registerInput) toSession() session.RegisterInput {
	return session.RegisterInput{
		Username:        in.username,
		Email:           in.email,
		Password:        in.password,
		ConfirmPassword: in.confirm,
	}
}

// registerForm collects the account fields. The same validation the
// session store enforces runs here first so mistakes never leave the
// form.
type registerForm struct {
	inputs []textinput.Model
	focus  int
	err    string
	busy   bool
}

func newRegisterForm() registerForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	confirm := textinput.New()
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 128

	return registerForm{inputs: []textinput.Model{username, email, password, confirm}}
}

func (f registerForm) input() registerInput {
	return registerInput{
		username: f.inputs[0].Value(),
		email:    f.inputs[1].Value(),
		password: f.inputs[2].Value(),
		confirm:  f.inputs[3].Value(),
	}
}

// validate mirrors the session store's pre-network checks.
func (f registerForm) validate() string {
	in := f.input()
	switch {
	case in.username == "" || in.email == "" || in.password == "":
		return "All fields are required."
	case in.password != in.confirm:
		return "Passwords do not match."
	case len(in.password) < 8:
		return "Password must be at least 8 characters long."
	}
	return ""
}

func (f registerForm) update(msg tea.KeyMsg) (registerForm, bool) {
	if f.busy {
		return f, false
	}

	switch msg.String() {
	case "tab", "down":
		f = f.setFocus((f.focus + 1) % len(f.inputs))
		return f, false
	case "shift+tab", "up":
		f = f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return f, false
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f = f.setFocus(f.focus + 1)
			return f, false
		}
		if problem := f.validate(); problem != "" {
			f.err = problem
			return f, false
		}
		f.err = ""
		f.busy = true
		return f, true
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	_ = cmd
	return f, false
}

func (f registerForm) setFocus(i int) registerForm {
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	f.focus = i
	return f
}

func (f registerForm) fail(message string) registerForm {
	f.busy = false
	f.err = message
	return f
}

func (f registerForm) view(s Styles) string {
	labels := []string{"Username", "Email", "Password", "Confirm password"}

	out := s.Title.Render("Create an account") + "\n\n"
	for i, in := range f.inputs {
		out += s.FieldLabel.Render(labels[i]) + "\n" + in.View() + "\n\n"
	}
	if f.err != "" {
		out += s.FormError.Render(f.err) + "\n\n"
	}
	if f.busy {
		out += s.Muted.Render("Creating account...") + "\n"
	} else {
		out += s.Help.Render("enter: create account · ctrl+r: back to sign in · ctrl+c: quit") + "\n"
	}
	return out
}
