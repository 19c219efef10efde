package main

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

const banner = ` +-+-+-+-+ +-+-+-+ +-+-+-+-+
 |C|h|a|t| |B|o|t| |L|o|o|m|
 +-+-+-+-+ +-+-+-+ +-+-+-+-+`
