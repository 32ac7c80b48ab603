package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/workflow"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginModel is the sign-in screen.
type LoginModel struct {
	auth         *workflow.Auth
	focusedField int
	inputs       []textinput.Model
	error        string
}

// NewLoginModel creates the sign-in screen.
func NewLoginModel(auth *workflow.Auth) *LoginModel {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "you@example.com"
	inputs[0].Focus()
	inputs[0].CharLimit = 120

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].CharLimit = 120

	return &LoginModel{auth: auth, inputs: inputs}
}

// Update handles input.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		return m, m.submit()
	case "tab", "down":
		m.nextField()
		return m, nil
	case "shift+tab", "up":
		m.prevField()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return m, cmd
}

// View renders the screen.
func (m *LoginModel) View(width, height int) string {
	fields := []string{
		renderFormField("Email", m.inputs[0], m.focusedField == 0),
		renderFormField("Password", m.inputs[1], m.focusedField == 1),
	}
	if m.error != "" {
		fields = append(fields, ErrorStyle.Render(m.error))
	}

	title := HeaderStyle.Render("tavolo")
	subtitle := MutedStyle.Render("sign in to continue")
	form := PanelStyle.Width(44).Render(joinFields(fields))
	card := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", form)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m *LoginModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *LoginModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *LoginModel) submit() tea.Cmd {
	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()

	return func() tea.Msg {
		if email == "" || password == "" {
			return model.ErrorMsg{Err: fmt.Errorf("email and password are required")}
		}
		user, err := m.auth.Login(context.Background(), email, password)
		if err != nil {
			if errors.Is(err, workflow.ErrUnknownEmail) {
				return model.ErrorMsg{Err: fmt.Errorf("no account for %s", email)}
			}
			if errors.Is(err, workflow.ErrWrongPassword) {
				return model.ErrorMsg{Err: fmt.Errorf("wrong password")}
			}
			return model.ErrorMsg{Err: err}
		}
		return model.AuthenticatedMsg{User: user}
	}
}
