package main

import "github.com/charmbracelet/lipgloss"

var (
	styleProperty = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleSuccess  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true)
)
