package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// renderFormField renders a labelled input with focus highlighting.
func renderFormField(label string, input textinput.Model, focused bool) string {
	style := MutedStyle
	if focused {
		style = LabelStyle
	}
	return style.Render(label) + "\n" + input.View()
}

// joinFields lays form fields out vertically with blank lines between.
func joinFields(fields []string) string {
	return strings.Join(fields, "\n\n")
}
