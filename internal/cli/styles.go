// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// NeedColor marks essential spending.
	NeedColor = lipgloss.Color("#4ECDC4") // Teal
	// WantColor marks discretionary spending.
	WantColor = lipgloss.Color("#FFE66D") // Yellow
	// UnknownColor marks verdicts the model could not produce.
	UnknownColor = lipgloss.Color("#666666") // Gray
	// OverrideColor marks rule-overridden verdicts.
	OverrideColor = lipgloss.Color("#C792EA") // Purple
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(NeedColor).
			MarginBottom(1)

	// NeedStyle formats "need" verdicts.
	NeedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(NeedColor)

	// WantStyle formats "want" verdicts.
	WantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WantColor)

	// UnknownStyle formats "unknown" verdicts.
	UnknownStyle = lipgloss.NewStyle().
			Foreground(UnknownColor)

	// OverrideStyle tags overridden verdicts.
	OverrideStyle = lipgloss.NewStyle().
			Foreground(OverrideColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(UnknownColor)
)

// VerdictStyle returns the style for a classification label.
func VerdictStyle(label string) lipgloss.Style {
	switch label {
	case "need":
		return NeedStyle
	case "want":
		return WantStyle
	default:
		return UnknownStyle
	}
}

// FormatConfidence renders a confidence percentage for terminal output.
func FormatConfidence(confidence float64) string {
	return SubtleStyle.Render(fmt.Sprintf("%.1f%%", confidence))
}
