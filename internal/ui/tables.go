package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/util"
	"tavolo/internal/workflow"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TablesModel is the per-restaurant table management screen. Adding a table
// happens inline rather than on a separate screen.
type TablesModel struct {
	venues     *workflow.Venues
	restaurant model.Restaurant
	rows       []model.Table
	cursor     int

	adding       bool
	focusedField int
	inputs       []textinput.Model
	error        string
}

// NewTablesModel creates the table management screen.
func NewTablesModel(venues *workflow.Venues, restaurant model.Restaurant, rows []model.Table) *TablesModel {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Table number"
	inputs[0].CharLimit = 4

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Capacity"
	inputs[1].CharLimit = 3

	return &TablesModel{venues: venues, restaurant: restaurant, rows: rows, inputs: inputs}
}

// Adding reports whether the inline add form is open.
func (m *TablesModel) Adding() bool { return m.adding }

// Selected returns the table under the cursor, or nil.
func (m *TablesModel) Selected() *model.Table {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// StartAdd opens the inline add form.
func (m *TablesModel) StartAdd() {
	m.adding = true
	m.focusedField = 0
	m.inputs[0].SetValue("")
	m.inputs[1].SetValue("")
	m.inputs[0].Focus()
	m.inputs[1].Blur()
	m.error = ""
}

// MoveDown moves the cursor down one row.
func (m *TablesModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// MoveUp moves the cursor up one row.
func (m *TablesModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// UpdateAdd handles input while the inline form is open.
func (m TablesModel) UpdateAdd(msg tea.KeyMsg) (TablesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.error = ""
		return m, nil
	case "enter", "ctrl+s":
		return m, m.save()
	case "tab", "shift+tab":
		m.inputs[m.focusedField].Blur()
		m.focusedField = (m.focusedField + 1) % len(m.inputs)
		m.inputs[m.focusedField].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return m, cmd
}

// View renders the table list and, when open, the inline add form.
func (m *TablesModel) View(width, height int) string {
	var parts []string
	parts = append(parts, HeaderStyle.Render(m.restaurant.Name+" — tables"))

	if len(m.rows) == 0 {
		parts = append(parts, MutedStyle.Padding(1, 2).Render("No tables yet. Press a to add one."))
	} else {
		parts = append(parts, TableHeaderStyle.Width(width-6).Render(
			fmt.Sprintf("%-8s %-10s %s", "number", "capacity", "status")))
		for i, t := range m.rows {
			line := fmt.Sprintf(" #%-7d %-10d %s", t.Number, t.Capacity, util.FormatAvailability(t.IsAvailable))
			style := NormalRowStyle
			if i == m.cursor {
				style = SelectedRowStyle
			}
			parts = append(parts, style.Width(width-6).Render(line))
		}
	}

	if m.adding {
		form := []string{
			renderFormField("Number *", m.inputs[0], m.focusedField == 0),
			renderFormField("Capacity *", m.inputs[1], m.focusedField == 1),
		}
		if m.error != "" {
			form = append(form, ErrorStyle.Render(m.error))
		}
		parts = append(parts, "", PanelStyle.Width(34).Render(joinFields(form)))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *TablesModel) save() tea.Cmd {
	numberRaw := strings.TrimSpace(m.inputs[0].Value())
	capacityRaw := strings.TrimSpace(m.inputs[1].Value())

	return func() tea.Msg {
		number, err := strconv.Atoi(numberRaw)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("table number must be a number")}
		}
		capacity, err := strconv.Atoi(capacityRaw)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("capacity must be a number")}
		}

		table, err := m.venues.AddTable(context.Background(), workflow.TableInput{
			RestaurantID: m.restaurant.ID,
			Number:       number,
			Capacity:     capacity,
		})
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.TableSavedMsg{Table: table}
	}
}
