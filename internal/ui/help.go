package ui

import (
	"strings"

	"tavolo/internal/model"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderHelpLine([]string{
			helpKey("tab", "next field"),
			helpKey("shift+tab", "prev field"),
			helpKey("ctrl+s", "save"),
			helpKey("esc", "cancel"),
		}, width)
	}

	switch screen {
	case model.ScreenLogin:
		return renderHelpLine([]string{
			helpKey("tab", "next field"),
			helpKey("enter", "sign in"),
			helpKey("ctrl+n", "create account"),
			helpKey("ctrl+c", "quit"),
		}, width)
	case model.ScreenRegister:
		return renderHelpLine([]string{
			helpKey("tab", "next field"),
			helpKey("ctrl+r", "toggle role"),
			helpKey("enter", "register"),
			helpKey("esc", "back to login"),
		}, width)
	case model.ScreenRestaurants:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("enter", "details"),
			helpKey("a", "add"),
			helpKey("←/→", "tabs"),
			helpKey("ctrl+l", "logout"),
			helpKey("q", "quit"),
		}, width)
	case model.ScreenRestaurantDetail:
		return renderHelpLine([]string{
			helpKey("t", "tables"),
			helpKey("n", "new reservation"),
			helpKey("e", "edit"),
			helpKey("d/D", "delete/with deps"),
			helpKey("esc", "back"),
		}, width)
	case model.ScreenTables:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("a", "add table"),
			helpKey("space", "toggle free"),
			helpKey("d/D", "delete/with deps"),
			helpKey("esc", "back"),
		}, width)
	case model.ScreenReservations:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("c", "confirm"),
			helpKey("x", "cancel"),
			helpKey("m", "complete"),
			helpKey("←/→", "tabs"),
			helpKey("q", "quit"),
		}, width)
	default:
		return renderHelpLine([]string{
			helpKey("esc", "back"),
			helpKey("ctrl+c", "quit"),
		}, width)
	}
}

func helpKey(keys, desc string) string {
	return HelpKeyStyle.Render(keys) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	return FooterStyle.Width(width).Render(strings.Join(keys, "  "))
}
