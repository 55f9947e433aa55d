package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is one selectable entry in the action picker.
type Action struct {
	Name        string
	Description string
}

type ActionSelector struct {
	actions   []Action
	cursor    int
	done      bool
	cancelled bool
}

var (
	boldStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewActionSelector builds a selector with the cursor on defaultName.
func NewActionSelector(actions []Action, defaultName string) *ActionSelector {
	s := &ActionSelector{actions: actions}
	for i, action := range actions {
		if action.Name == defaultName {
			s.cursor = i
		}
	}
	return s
}

func (m *ActionSelector) Init() tea.Cmd {
	return nil
}

func (m *ActionSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.actions)-1 {
				m.cursor++
			}

		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *ActionSelector) View() string {
	var b strings.Builder

	b.WriteString(boldStyle.Render("Select action"))
	b.WriteString("\n\n")

	for i, action := range m.actions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-10s %s", cursor, action.Name, dimStyle.Render(action.Description))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpText := []string{
		"↑/↓ or k/j: navigate",
		"enter: confirm",
		"q or esc: cancel",
	}
	b.WriteString(dimStyle.Render(strings.Join(helpText, " • ")))

	return b.String()
}

func (m *ActionSelector) Selected() string {
	return m.actions[m.cursor].Name
}

func (m *ActionSelector) IsCancelled() bool {
	return m.cancelled
}

// RunActionSelector shows the picker and returns the chosen action name.
func RunActionSelector(actions []Action, defaultName string) (string, error) {
	model := NewActionSelector(actions, defaultName)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run action selector: %w", err)
	}

	selector := finalModel.(*ActionSelector)
	if selector.IsCancelled() {
		return "", fmt.Errorf("action selection cancelled")
	}

	return selector.Selected(), nil
}
