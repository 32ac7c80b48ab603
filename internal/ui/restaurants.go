package ui

import (
	"fmt"
	"strings"

	"tavolo/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RestaurantsModel is the restaurant list screen.
type RestaurantsModel struct {
	rows   []model.Restaurant
	cursor int
	offset int
}

// NewRestaurantsModel creates the restaurant list.
func NewRestaurantsModel(rows []model.Restaurant) *RestaurantsModel {
	return &RestaurantsModel{rows: rows}
}

// Selected returns the restaurant under the cursor, or nil.
func (m *RestaurantsModel) Selected() *model.Restaurant {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// MoveDown moves the cursor down one row.
func (m *RestaurantsModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// MoveUp moves the cursor up one row.
func (m *RestaurantsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// View renders the list.
func (m *RestaurantsModel) View(width, height int) string {
	if len(m.rows) == 0 {
		return MutedStyle.Padding(1, 2).Render("No restaurants yet. Press a to add one.")
	}

	header := TableHeaderStyle.Width(width).Render(
		fmt.Sprintf("%-28s %-30s %-16s %s", "name", "address", "phone", "email"))

	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}

	var lines []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visible; i++ {
		r := m.rows[i]
		line := fmt.Sprintf(" %-28s %-30s %-16s %s",
			truncate(r.Name, 27), truncate(r.Address, 29), truncate(r.Phone, 15), truncate(r.Email, 24))
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		lines = append(lines, style.Width(width).Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
