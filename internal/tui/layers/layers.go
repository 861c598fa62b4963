// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth returns a modal width of num/den of the screen, clamped to [minWidth, maxWidth]
// and never wider than the screen itself
func ModalWidth(screenWidth, num, den, minWidth, maxWidth int) int {
	width := min(max(screenWidth*num/den, minWidth), maxWidth)
	return min(width, max(screenWidth-2, 1))
}
