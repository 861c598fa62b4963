package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/config/colors"
)

// CreateTheme returns the huh theme for a dialog framed in frame, one of the
// scheme's dialog colors (Create, Edit or Accent)
func CreateTheme(scheme colors.ColorScheme, frame string) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		focusedStyles(&t.Focused, scheme, lipgloss.Color(frame))

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color(scheme.Subtle)).Bold(false)
		return t
	})
}

// TaskFormFrame picks the frame color of the task modal
func TaskFormFrame(scheme colors.ColorScheme, editing bool) string {
	if editing {
		return scheme.Edit
	}
	return scheme.Create
}

func focusedStyles(f *huh.FieldStyles, scheme colors.ColorScheme, frame color.Color) {
	subtle := lipgloss.Color(scheme.Subtle)
	normal := lipgloss.Color(scheme.Normal)
	invalid := lipgloss.Color(scheme.Delete)
	chosen := lipgloss.Color(scheme.Accent)

	f.Base = f.Base.BorderForeground(frame)
	f.Title = f.Title.Foreground(lipgloss.Color(scheme.Title)).Bold(true)
	f.Description = f.Description.Foreground(subtle)

	f.ErrorIndicator = f.ErrorIndicator.Foreground(invalid)
	f.ErrorMessage = f.ErrorMessage.Foreground(invalid)

	f.SelectSelector = f.SelectSelector.Foreground(frame)
	f.SelectedOption = f.SelectedOption.Foreground(chosen).Bold(true)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(chosen)
	f.UnselectedOption = f.UnselectedOption.Foreground(normal)
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(subtle)

	f.FocusedButton = f.FocusedButton.
		Foreground(lipgloss.Color(scheme.SelectedFg)).
		Background(frame).
		Bold(true)
	f.BlurredButton = f.BlurredButton.
		Foreground(normal).
		Background(subtle)

	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(frame)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(frame)
}
