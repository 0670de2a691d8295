package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"}
	colorError   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ef5350"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#0277bd", Dark: "#4fc3f7"}

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	ruleStyle    = lipgloss.NewStyle().Faint(true)
)

// Rule is a horizontal line of width ch characters.
func Rule(ch string, width int) string {
	return ruleStyle.Render(strings.Repeat(ch, width))
}

// Banner frames title between two rules.
func Banner(title, ch string, width int) string {
	return Rule(ch, width) + "\n" + titleStyle.Render(title) + "\n" + Rule(ch, width)
}

func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func Failure(msg string) string {
	return errorStyle.Render("✗ " + msg)
}
