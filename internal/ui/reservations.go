package ui

import (
	"fmt"

	"tavolo/internal/model"
	"tavolo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// ReservationsModel is the reservation list screen.
type ReservationsModel struct {
	rows   []model.ReservationRow
	cursor int
	offset int
}

// NewReservationsModel creates the reservation list.
func NewReservationsModel(rows []model.ReservationRow) *ReservationsModel {
	return &ReservationsModel{rows: rows}
}

// Selected returns the row under the cursor, or nil.
func (m *ReservationsModel) Selected() *model.ReservationRow {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// MoveDown moves the cursor down one row.
func (m *ReservationsModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// MoveUp moves the cursor up one row.
func (m *ReservationsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// View renders the list.
func (m *ReservationsModel) View(width, height int) string {
	if len(m.rows) == 0 {
		return MutedStyle.Padding(1, 2).Render("No reservations yet. Book one from a restaurant's detail screen.")
	}

	header := TableHeaderStyle.Width(width).Render(
		fmt.Sprintf("%-18s %-22s %-20s %-7s %-6s %s",
			"when", "restaurant", "customer", "table", "party", "status"))

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
		row := m.rows[i]
		res := row.Reservation
		line := fmt.Sprintf(" %-18s %-22s %-20s #%-6d %-6s %s",
			util.FormatDateHuman(res.Date),
			truncate(row.RestaurantName, 21),
			truncate(row.CustomerName, 19),
			row.TableNumber,
			util.FormatGuests(res.NumberOfGuests),
			statusStyle(res.Status).Render(util.FormatStatus(res.Status)))
		if i == m.cursor {
			line = SelectedRowStyle.Width(width).Render(fmt.Sprintf(" %-18s %-22s %-20s #%-6d %-6s %s",
				util.FormatDateHuman(res.Date),
				truncate(row.RestaurantName, 21),
				truncate(row.CustomerName, 19),
				row.TableNumber,
				util.FormatGuests(res.NumberOfGuests),
				util.FormatStatus(res.Status)))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...)
}

func statusStyle(s model.ReservationStatus) lipgloss.Style {
	switch s {
	case model.StatusPending:
		return StatusPendingStyle
	case model.StatusConfirmed:
		return StatusConfirmedStyle
	case model.StatusCancelled:
		return StatusCancelledStyle
	default:
		return StatusCompletedStyle
	}
}
