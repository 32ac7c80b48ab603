package ui

import (
	"fmt"

	"tavolo/internal/model"
	"tavolo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// RestaurantDetailModel shows one restaurant and its tables.
type RestaurantDetailModel struct {
	restaurant model.Restaurant
	tables     []model.Table
}

// NewRestaurantDetailModel creates the detail screen.
func NewRestaurantDetailModel(restaurant model.Restaurant, tables []model.Table) *RestaurantDetailModel {
	return &RestaurantDetailModel{restaurant: restaurant, tables: tables}
}

// View renders the detail panel.
func (m *RestaurantDetailModel) View(width, height int) string {
	r := m.restaurant

	var info []string
	info = append(info, HeaderStyle.Render(r.Name))
	info = append(info, LabelStyle.Render("Address ")+NormalRowStyle.Render(r.Address))
	info = append(info, LabelStyle.Render("Phone   ")+NormalRowStyle.Render(r.Phone))
	info = append(info, LabelStyle.Render("Email   ")+NormalRowStyle.Render(r.Email))
	info = append(info, "")

	free := 0
	for _, t := range m.tables {
		if t.IsAvailable {
			free++
		}
	}
	info = append(info, LabelStyle.Render(fmt.Sprintf("Tables (%d, %d free)", len(m.tables), free)))
	if len(m.tables) == 0 {
		info = append(info, MutedStyle.Render("  none yet — press t to manage tables"))
	}
	for _, t := range m.tables {
		line := fmt.Sprintf("  #%-3d seats %-3d %s", t.Number, t.Capacity, util.FormatAvailability(t.IsAvailable))
		style := NormalRowStyle
		if !t.IsAvailable {
			style = MutedStyle
		}
		info = append(info, style.Render(line))
	}

	panel := PanelStyle.Width(width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, info...))
	return panel
}
