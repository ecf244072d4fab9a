package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen
func NewWelcome(endpoint string) *Welcome {
	return &Welcome{
		endpoint: endpoint,
		loading:  true,
		commands: []Command{
			{Name: "write", Description: "open the prompt editor"},
			{Name: "refresh", Description: "reload server status and templates"},
			{Name: "quit", Description: "exit justcopy"},
		},
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.executeCommand()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case StatusMsg:
		m.loading = false
		m.health = msg.health
		m.templates = msg.templates
		m.statusErr = msg.err
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("marketing copy from a single prompt"))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("server: " + m.endpoint))
	b.WriteString("  ")
	b.WriteString(m.statusView())
	b.WriteString("\n\n")

	if len(m.templates) > 0 {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("templates:"))
		b.WriteString("\n\n")

		for _, t := range m.templates {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				commandStyle.Render(fmt.Sprintf("%d. %s", t.ID, t.Name)),
				commandDescStyle.Render("- "+t.Description+" ("+t.Category+")"),
			))
		}

		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		))
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> ") + inputStyle.Render(m.input+"_"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) statusView() string {
	switch {
	case m.loading:
		return infoStyle.Render("checking...")
	case m.statusErr != nil:
		return errorStyle.Render("unreachable: " + m.statusErr.Error())
	case m.health != nil:
		return successStyle.Render(m.health.Status)
	default:
		return ""
	}
}

func (m *Welcome) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)
	m.input = ""

	switch cmd {
	case "quit":
		return tea.Quit

	case "write":
		return func() tea.Msg {
			return EnterEditorMsg{}
		}

	case "refresh":
		m.loading = true
		return func() tea.Msg {
			return refreshMsg{}
		}

	default:
		if cmd != "" {
			return func() tea.Msg {
				return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
			}
		}
		return nil
	}
}

// asks the app to reload the welcome screen data
type refreshMsg struct{}
