package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var greyed = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// RenderPopupOverlay draws an already styled popup centred over a greyed-out
// copy of the main content
func RenderPopupOverlay(mainContent, popup string, height, width int) string {
	popupLines := strings.Split(popup, "\n")
	modalW := lipgloss.Width(popup)
	modalH := len(popupLines)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(mainContent, "\n")
	for len(base) < max(height, y+modalH) {
		base = append(base, "")
	}

	out := make([]string, len(base))
	for i, line := range base {
		plain := ansi.Strip(line)
		if i < y || i >= y+modalH {
			out[i] = greyed.Render(plain)
			continue
		}
		left := ansi.Truncate(plain, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(plain, x+modalW, "")
		out[i] = greyed.Render(left) + popupLines[i-y] + greyed.Render(right)
	}
	return strings.Join(out, "\n")
}
