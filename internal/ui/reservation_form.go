package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tavolo/internal/model"
	"tavolo/internal/workflow"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02 15:04"

// ReservationFormModel is the new-reservation form for one restaurant. The
// table is picked from the restaurant's currently available tables.
type ReservationFormModel struct {
	bookings   *workflow.Bookings
	restaurant model.Restaurant
	tables     []model.Table // available tables only
	tableIdx   int

	focusedField int
	inputs       []textinput.Model
	error        string
}

// NewReservationFormModel creates the form. tables must already be filtered
// to available ones.
func NewReservationFormModel(bookings *workflow.Bookings, restaurant model.Restaurant, tables []model.Table) *ReservationFormModel {
	inputs := make([]textinput.Model, 6)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = time.Now().Add(24 * time.Hour).Format(dateLayout)
	inputs[0].Focus()
	inputs[0].CharLimit = 16

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Guests"
	inputs[1].CharLimit = 3

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "Customer name"
	inputs[2].CharLimit = 100

	inputs[3] = textinput.New()
	inputs[3].Placeholder = "customer@example.com"
	inputs[3].CharLimit = 120

	inputs[4] = textinput.New()
	inputs[4].Placeholder = "Customer phone"
	inputs[4].CharLimit = 30

	inputs[5] = textinput.New()
	inputs[5].Placeholder = "Notes (optional)"
	inputs[5].CharLimit = 200

	return &ReservationFormModel{bookings: bookings, restaurant: restaurant, tables: tables, inputs: inputs}
}

// Update handles input.
func (m ReservationFormModel) Update(msg tea.KeyMsg) (ReservationFormModel, tea.Cmd) {
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
	case "left", "ctrl+p":
		if len(m.tables) > 0 {
			m.tableIdx = (m.tableIdx - 1 + len(m.tables)) % len(m.tables)
		}
		return m, nil
	case "right", "ctrl+n":
		if len(m.tables) > 0 {
			m.tableIdx = (m.tableIdx + 1) % len(m.tables)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return m, cmd
}

// View renders the form.
func (m *ReservationFormModel) View(width, height int) string {
	var tablePicker string
	if len(m.tables) == 0 {
		tablePicker = ErrorStyle.Render("No available tables at " + m.restaurant.Name)
	} else {
		t := m.tables[m.tableIdx]
		tablePicker = LabelStyle.Render("Table") + "  " +
			NormalRowStyle.Render(fmt.Sprintf("#%d (seats %d)", t.Number, t.Capacity)) +
			MutedStyle.Render(fmt.Sprintf("  ←/→ %d of %d", m.tableIdx+1, len(m.tables)))
	}

	fields := []string{
		HeaderStyle.Render("New reservation — " + m.restaurant.Name),
		tablePicker,
		renderFormField("Date (YYYY-MM-DD HH:MM) *", m.inputs[0], m.focusedField == 0),
		renderFormField("Guests *", m.inputs[1], m.focusedField == 1),
		renderFormField("Customer name *", m.inputs[2], m.focusedField == 2),
		renderFormField("Customer email *", m.inputs[3], m.focusedField == 3),
		renderFormField("Customer phone *", m.inputs[4], m.focusedField == 4),
		renderFormField("Notes", m.inputs[5], m.focusedField == 5),
	}
	if m.error != "" {
		fields = append(fields, ErrorStyle.Render(m.error))
	}

	form := PanelStyle.Width(min(width-4, 64)).Render(joinFields(fields))
	return lipgloss.NewStyle().Padding(1, 2).Render(form)
}

func (m *ReservationFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *ReservationFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *ReservationFormModel) save() tea.Cmd {
	if len(m.tables) == 0 {
		return func() tea.Msg {
			return model.ErrorMsg{Err: fmt.Errorf("no available tables to book")}
		}
	}
	table := m.tables[m.tableIdx]
	dateRaw := strings.TrimSpace(m.inputs[0].Value())
	guestsRaw := strings.TrimSpace(m.inputs[1].Value())
	in := workflow.NewReservationInput{
		RestaurantID:  m.restaurant.ID,
		TableID:       table.ID,
		CustomerName:  strings.TrimSpace(m.inputs[2].Value()),
		CustomerEmail: strings.TrimSpace(m.inputs[3].Value()),
		CustomerPhone: strings.TrimSpace(m.inputs[4].Value()),
		Notes:         strings.TrimSpace(m.inputs[5].Value()),
	}

	return func() tea.Msg {
		date, err := time.ParseInLocation(dateLayout, dateRaw, time.Local)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("date must look like %s", dateLayout)}
		}
		guests, err := strconv.Atoi(guestsRaw)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("guests must be a number")}
		}
		in.Date = date
		in.Guests = guests

		reservation, err := m.bookings.Create(context.Background(), in)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ReservationSavedMsg{Reservation: reservation}
	}
}
