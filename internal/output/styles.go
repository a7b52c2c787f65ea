package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for text output
var Styles = struct {
	Header  lipgloss.Style
	Index   lipgloss.Style
	Job     lipgloss.Style
	Field   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),  // Bright cyan
	Index:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")), // Magenta
	Job:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // Cyan
	Field:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),            // White
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),            // Gray
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),             // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red bold
}

// PlainStyles strips colors for non-TTY output.
func PlainStyles() {
	plain := lipgloss.NewStyle()
	Styles.Header = plain
	Styles.Index = plain
	Styles.Job = plain
	Styles.Field = plain
	Styles.Value = plain
	Styles.Success = plain
	Styles.Warning = plain
	Styles.Danger = plain
}
