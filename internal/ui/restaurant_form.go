package ui

import (
	"context"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/workflow"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RestaurantFormModel is the add/edit restaurant form.
type RestaurantFormModel struct {
	venues       *workflow.Venues
	restaurantID string
	ownerID      string
	focusedField int
	inputs       []textinput.Model
	error        string
}

// NewRestaurantFormModel creates an empty form owned by the given user.
func NewRestaurantFormModel(venues *workflow.Venues, ownerID string) *RestaurantFormModel {
	inputs := make([]textinput.Model, 4)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Restaurant name"
	inputs[0].Focus()
	inputs[0].CharLimit = 100

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Street address"
	inputs[1].CharLimit = 200

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "Phone"
	inputs[2].CharLimit = 30

	inputs[3] = textinput.New()
	inputs[3].Placeholder = "Contact email"
	inputs[3].CharLimit = 120

	return &RestaurantFormModel{venues: venues, ownerID: ownerID, inputs: inputs}
}

// LoadRestaurant fills the form for editing.
func (m *RestaurantFormModel) LoadRestaurant(r model.Restaurant) {
	m.restaurantID = r.ID
	m.ownerID = r.OwnerID
	m.inputs[0].SetValue(r.Name)
	m.inputs[1].SetValue(r.Address)
	m.inputs[2].SetValue(r.Phone)
	m.inputs[3].SetValue(r.Email)
}

// Update handles input.
func (m RestaurantFormModel) Update(msg tea.KeyMsg) (RestaurantFormModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return model.FormCancelledMsg{} }
	case "ctrl+s":
		return m, m.save()
	case "tab":
		m.nextField()
		return m, nil
	case "shift+tab":
		m.prevField()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return m, cmd
}

// View renders the form.
func (m *RestaurantFormModel) View(width, height int) string {
	fields := []string{
		renderFormField("Name *", m.inputs[0], m.focusedField == 0),
		renderFormField("Address *", m.inputs[1], m.focusedField == 1),
		renderFormField("Phone *", m.inputs[2], m.focusedField == 2),
		renderFormField("Email *", m.inputs[3], m.focusedField == 3),
	}
	if m.error != "" {
		fields = append(fields, ErrorStyle.Render(m.error))
	}

	return PanelStyle.Width(width - 4).Render(joinFields(fields))
}

func (m *RestaurantFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *RestaurantFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *RestaurantFormModel) save() tea.Cmd {
	in := workflow.RestaurantInput{
		ID:      m.restaurantID,
		Name:    strings.TrimSpace(m.inputs[0].Value()),
		Address: strings.TrimSpace(m.inputs[1].Value()),
		Phone:   strings.TrimSpace(m.inputs[2].Value()),
		Email:   strings.TrimSpace(m.inputs[3].Value()),
		OwnerID: m.ownerID,
	}

	return func() tea.Msg {
		restaurant, err := m.venues.SaveRestaurant(context.Background(), in)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.RestaurantSavedMsg{Restaurant: restaurant}
	}
}
