// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the search screen.
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Button    lipgloss.Style
	ButtonOff lipgloss.Style
	Error     lipgloss.Style
	Header    lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Chip      lipgloss.Style
	Stars     lipgloss.Style
	Link      lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2),
		ButtonOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 2),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("33")).
			Padding(0, 1),
		Stars: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Link:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Help:  lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
