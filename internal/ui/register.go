package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/util"
	"tavolo/internal/workflow"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RegisterModel is the account creation screen.
type RegisterModel struct {
	auth         *workflow.Auth
	focusedField int
	inputs       []textinput.Model
	role         model.UserRole
	error        string
}

// NewRegisterModel creates the registration screen.
func NewRegisterModel(auth *workflow.Auth) *RegisterModel {
	inputs := make([]textinput.Model, 5)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Full name"
	inputs[0].Focus()
	inputs[0].CharLimit = 100

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "you@example.com"
	inputs[1].CharLimit = 120

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "Phone"
	inputs[2].CharLimit = 30

	inputs[3] = textinput.New()
	inputs[3].Placeholder = "Password (min 6 chars)"
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].CharLimit = 120

	inputs[4] = textinput.New()
	inputs[4].Placeholder = "Confirm password"
	inputs[4].EchoMode = textinput.EchoPassword
	inputs[4].CharLimit = 120

	return &RegisterModel{auth: auth, inputs: inputs, role: model.RoleCustomer}
}

// Update handles input.
func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		return m, m.submit()
	case "ctrl+r":
		if m.role == model.RoleCustomer {
			m.role = model.RoleRestaurantOwner
		} else {
			m.role = model.RoleCustomer
		}
		return m, nil
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
func (m *RegisterModel) View(width, height int) string {
	fields := []string{
		renderFormField("Name *", m.inputs[0], m.focusedField == 0),
		renderFormField("Email *", m.inputs[1], m.focusedField == 1),
		renderFormField("Phone *", m.inputs[2], m.focusedField == 2),
		renderFormField("Password *", m.inputs[3], m.focusedField == 3),
		renderFormField("Confirm *", m.inputs[4], m.focusedField == 4),
		LabelStyle.Render("Role") + "  " + NormalRowStyle.Render(util.FormatRole(m.role)) +
			MutedStyle.Render("  (ctrl+r to switch)"),
	}
	if m.error != "" {
		fields = append(fields, ErrorStyle.Render(m.error))
	}

	title := HeaderStyle.Render("create account")
	form := PanelStyle.Width(48).Render(joinFields(fields))
	card := lipgloss.JoinVertical(lipgloss.Center, title, "", form)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m *RegisterModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *RegisterModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *RegisterModel) submit() tea.Cmd {
	in := workflow.RegisterInput{
		Name:     strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Phone:    strings.TrimSpace(m.inputs[2].Value()),
		Password: m.inputs[3].Value(),
		Role:     m.role,
	}
	confirm := m.inputs[4].Value()

	return func() tea.Msg {
		if in.Password != confirm {
			return model.ErrorMsg{Err: fmt.Errorf("passwords do not match")}
		}
		user, err := m.auth.Register(context.Background(), in)
		if err != nil {
			if errors.Is(err, workflow.ErrEmailTaken) {
				return model.ErrorMsg{Err: fmt.Errorf("%s already has an account", in.Email)}
			}
			return model.ErrorMsg{Err: err}
		}
		return model.AuthenticatedMsg{User: user}
	}
}
