package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fintrack/internal/validate"
)

// loginForm holds the login screen's two inputs plus per-field errors.
type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
	errors   map[string]string
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "Enter your email"
	username.Prompt = ""
	username.CharLimit = 128
	username.Width = 36

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.Prompt = ""
	password.CharLimit = 128
	password.Width = 36
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{
		username: username,
		password: password,
		errors:   map[string]string{},
	}
}

// Focus puts the cursor in the first field.
func (f *loginForm) Focus() tea.Cmd {
	f.focus = 0
	f.username.Focus()
	f.password.Blur()
	return textinput.Blink
}

// CycleFocus moves focus by delta, wrapping around both fields.
func (f *loginForm) CycleFocus(delta int) {
	f.focus = (f.focus + delta + 2) % 2
	if f.focus == 0 {
		f.username.Focus()
		f.password.Blur()
	} else {
		f.username.Blur()
		f.password.Focus()
	}
}

// Update forwards key input to the focused field.
func (f *loginForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

// Validate runs the login schema against current input.
func (f *loginForm) Validate() bool {
	f.errors = validate.LoginForm{
		Username: f.username.Value(),
		Password: f.password.Value(),
	}.Validate()
	return len(f.errors) == 0
}

// Reset clears values and errors.
func (f *loginForm) Reset() {
	f.username.SetValue("")
	f.password.SetValue("")
	f.errors = map[string]string{}
	f.focus = 0
	f.username.Focus()
	f.password.Blur()
}

// expenseForm holds the add-expense screen's inputs.
type expenseForm struct {
	name        textinput.Model
	amount      textinput.Model
	description textinput.Model
	focus       int
	errors      map[string]string
}

func newExpenseForm() expenseForm {
	name := textinput.New()
	name.Placeholder = "Expense name"
	name.Prompt = ""
	name.CharLimit = 64
	name.Width = 36

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.Prompt = ""
	amount.CharLimit = 16
	amount.Width = 36

	description := textinput.New()
	description.Placeholder = "What was this for?"
	description.Prompt = ""
	description.CharLimit = 256
	description.Width = 36

	return expenseForm{
		name:        name,
		amount:      amount,
		description: description,
		errors:      map[string]string{},
	}
}

func (f *expenseForm) fields() []*textinput.Model {
	return []*textinput.Model{&f.name, &f.amount, &f.description}
}

// Focus puts the cursor in the first field.
func (f *expenseForm) Focus() tea.Cmd {
	f.focus = 0
	for i, field := range f.fields() {
		if i == 0 {
			field.Focus()
		} else {
			field.Blur()
		}
	}
	return textinput.Blink
}

// CycleFocus moves focus by delta, wrapping across the three fields.
func (f *expenseForm) CycleFocus(delta int) {
	fields := f.fields()
	f.focus = (f.focus + delta + len(fields)) % len(fields)
	for i, field := range fields {
		if i == f.focus {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

// Update forwards key input to the focused field.
func (f *expenseForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fields := f.fields()
	*fields[f.focus], cmd = fields[f.focus].Update(msg)
	return cmd
}

// Validate runs the expense schema against current input.
func (f *expenseForm) Validate() bool {
	f.errors = validate.ExpenseForm{
		Name:        f.name.Value(),
		Amount:      f.amount.Value(),
		Description: f.description.Value(),
	}.Validate()
	return len(f.errors) == 0
}

// Reset clears values and errors.
func (f *expenseForm) Reset() {
	for _, field := range f.fields() {
		field.SetValue("")
		field.Blur()
	}
	f.errors = map[string]string{}
	f.focus = 0
	f.name.Focus()
}
