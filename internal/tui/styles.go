package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true) // Bright magenta
	bufferColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))            // White
	cursorColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	sentenceColor  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	frequencyColor = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
	successColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	dimmedColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Dark grey
)
