package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/peterkahumu/fastapi-todo-project/internal/todo"
)

var (
	appStyle  = lipgloss.NewStyle().Padding(1, 2)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 2)

	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func priorityBadge(p todo.Priority) string {
	switch p {
	case todo.PriorityHigh:
		return highStyle.Render("[high]")
	case todo.PriorityMedium:
		return mediumStyle.Render("[med]")
	default:
		return lowStyle.Render("[low]")
	}
}
