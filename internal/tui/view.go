package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/taskpad/internal/domain"
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	labelStyle       = lipgloss.NewStyle().Bold(true)
	requiredStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	fieldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	buttonStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	disabledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	dateStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	errorBannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successBannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	defaultWidth = 80
	cursor       = "▏"
	dateLayout   = "Jan 2, 2006 03:04 PM"
)

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Todo App "))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errorBannerStyle.Render("✗ " + m.errMsg))
		b.WriteString(helpStyle.Render("  (x to dismiss)"))
		b.WriteString("\n\n")
	}
	if m.successMsg != "" {
		b.WriteString(successBannerStyle.Render("✓ " + m.successMsg))
		b.WriteString("\n\n")
	}

	formPanel := m.renderForm()
	listPanel := m.renderList()

	availableWidth := width - 2
	if availableWidth > 100 {
		colWidth := availableWidth / 2
		formPanel = m.applyPanelStyle(m.focus != focusList, formPanel, colWidth-4)
		listPanel = m.applyPanelStyle(m.focus == focusList, listPanel, colWidth-4)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, formPanel, listPanel))
	} else {
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		formPanel = m.applyPanelStyle(m.focus != focusList, formPanel, panelWidth)
		listPanel = m.applyPanelStyle(m.focus == focusList, listPanel, panelWidth)
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, formPanel, listPanel))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) applyPanelStyle(active bool, content string, width int) string {
	style := panelStyle
	if active {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Add New Task"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Task Title ") + requiredStyle.Render("*"))
	b.WriteString(fmt.Sprintf("  %d/%d\n", len(m.title), domain.MaxTitleLength))
	b.WriteString(renderField(m.title, "Enter your task title...", m.focus == focusTitle))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(renderField(m.description, "Add more details about your task...", m.focus == focusDescription))
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(disabledStyle.Render("Creating..."))
	case m.CanSubmit():
		b.WriteString(buttonStyle.Render("+ Add Task"))
	default:
		b.WriteString(disabledStyle.Render("+ Add Task"))
	}

	return b.String()
}

func renderField(value []rune, placeholder string, focused bool) string {
	text := fieldStyle.Render(string(value))
	if len(value) == 0 {
		text = placeholderStyle.Render(placeholder)
	}
	if focused {
		return "> " + text + cursor
	}
	return "  " + text
}

func (m Model) renderList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(headerStyle.Render("Your Tasks"))
		b.WriteString("\n")
		b.WriteString("  Loading your tasks...")
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString(headerStyle.Render("Your Tasks"))
		b.WriteString("\n")
		b.WriteString("  No tasks yet!\n")
		b.WriteString(placeholderStyle.Render("  Start by creating your first task. Keep track of what needs to be done!"))
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Your Tasks (%d)", len(m.tasks))))
	b.WriteString("\n")

	for i, task := range m.tasks {
		marker := "  "
		line := task.Title
		if m.focus == focusList && i == m.selected {
			marker = "> "
			line = selectedStyle.Render(line)
		}

		action := "[Done]"
		if task.ID == m.completingID {
			action = "[...]"
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, line, helpStyle.Render(action)))
		if task.Description != "" {
			b.WriteString("    " + task.Description + "\n")
		}
		b.WriteString("    " + dateStyle.Render(task.CreatedAt.Local().Format(dateLayout)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) helpText() string {
	if m.focus == focusList {
		return "tab: switch focus | ↑/↓: select | enter: done | r: refresh | x: dismiss error | esc: quit"
	}
	return "tab: switch focus | enter: add task | esc: quit"
}
