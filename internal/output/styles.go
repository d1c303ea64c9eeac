package output

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

// Shared Styles
var (
	// Welcome box printed before the prompts
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Foreground(colorCyan).
			Bold(true).
			Padding(1, 4).
			Align(lipgloss.Center)

	// Prompt question and default hint
	QuestionStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	DefaultStyle  = lipgloss.NewStyle().Foreground(colorGray)
	AnswerStyle   = lipgloss.NewStyle().Foreground(colorCyan)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	// Created / skipped file markers
	CreatedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	SkippedStyle = lipgloss.NewStyle().Foreground(colorYellow)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorGray)

	HappyStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)
