package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - headings
	colorGreen = lipgloss.Color("35")  // green - positive verdicts
	colorRed   = lipgloss.Color("167") // soft red - negative verdicts
	colorWhite = lipgloss.Color("255") // bright white - values
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleAccept  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleReject  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleNeutral = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconYes = "✓"
	iconNo  = "✗"
)

// verdict renders a yes/no outcome as a colored icon plus label.
func verdict(ok bool, yes, no string) string {
	if ok {
		return styleAccept.Render(iconYes + " " + yes)
	}
	return styleReject.Render(iconNo + " " + no)
}

// property renders one "label: value" line for the info listing.
func property(label string, value any) string {
	return fmt.Sprintf("  %s %s", styleLabel.Render(label+":"), styleValue.Render(fmt.Sprint(value)))
}

// boolMark renders a boolean as a plain colored mark.
func boolMark(ok bool) string {
	if ok {
		return styleAccept.Render(iconYes)
	}
	return styleNeutral.Render(iconNo)
}
