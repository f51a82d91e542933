// Package ui provides the styled terminal rendering for the funcov CLI.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors
var (
	Success     = lipgloss.Color("#8BC34A") // improvements, full coverage
	Warning     = lipgloss.Color("#FFC107") // missed bins
	Destructive = lipgloss.Color("#e53935") // regressions
	Info        = lipgloss.Color("#2196F3") // covergroup headings
)

var (
	TitleStyle       = lipgloss.NewStyle().Bold(true)
	RuleStyle        = lipgloss.NewStyle().Faint(true)
	CovergroupStyle  = lipgloss.NewStyle().Bold(true).Foreground(Info)
	HitStyle         = lipgloss.NewStyle().Foreground(Success)
	MissedStyle      = lipgloss.NewStyle().Foreground(Warning)
	RegressionStyle  = lipgloss.NewStyle().Foreground(Destructive)
	ImprovementStyle = lipgloss.NewStyle().Foreground(Success)
)
