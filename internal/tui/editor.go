package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// rows reserved for header, input box, metadata and status
	editorChrome  = 9
	minOutputRows = 5
)

// returns a new prompt editor
func NewEditor(client *Client) *EditorModel {
	ti := textinput.New()
	ti.Placeholder = "describe the copy you need..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(colorAccent)),
	)

	return &EditorModel{
		input:    ti,
		viewport: viewport.New(80, minOutputRows),
		spinner:  sp,
		client:   client,
	}
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditorModel) Update(msg tea.Msg) (*EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			prompt := m.input.Value()
			if strings.TrimSpace(prompt) == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.lastPrompt = prompt
			m.input.SetValue("")

			return m, tea.Batch(m.spinner.Tick, m.client.GenerateCmd(prompt))

		case "ctrl+l":
			m.input.SetValue("")
			m.output = ""
			m.metadata = ""
			m.hasOutput = false
			m.viewport.SetContent("")
			return m, nil

		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case GenerateResultMsg:
		m.isFetching = false
		m.hasOutput = true
		m.metadata = formatMetadata(msg.result)
		m.setOutput(msg.result.Content)
		return m, nil

	case GenerateErrorMsg:
		m.isFetching = false
		m.hasOutput = true
		m.metadata = ""
		m.output = fmt.Sprintf("Error: %v", msg.err)
		m.viewport.SetContent(errorStyle.Render(m.output))
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-10)
		m.viewport.Width = max(10, msg.Width-6)
		m.viewport.Height = max(minOutputRows, msg.Height-editorChrome)

		// re-wrap for the new width
		if m.hasOutput && m.metadata != "" {
			m.setOutput(m.output)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// renders content into the viewport, falling back to plain text
func (m *EditorModel) setOutput(content string) {
	m.output = content

	rendered, err := RenderContent(content, m.viewport.Width)
	if err != nil {
		rendered = content
	}

	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

func (m *EditorModel) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Render("PROMPT EDITOR")

	help := lipgloss.NewStyle().
		Foreground(colorGray).
		Render("[Enter: Generate] [↑/↓: Scroll] [Ctrl+L: Clear] [Ctrl+C: Back]")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left,
		header,
		strings.Repeat(" ", max(1, m.width-lipgloss.Width(header)-lipgloss.Width(help)-2)),
		help,
	))
	b.WriteString("\n\n")

	outputContent := m.viewport.View()
	if !m.hasOutput {
		outputContent = infoStyle.Render("ready! describe a product, blog post, ad, social post or email and press enter.")
	}

	b.WriteString(borderStyle.
		Width(max(10, m.width-4)).
		Padding(0, 1).
		Render(outputContent))
	b.WriteString("\n")

	if m.metadata != "" {
		b.WriteString(infoStyle.Render(m.metadata))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(borderStyle.
		Width(max(10, m.width-4)).
		Padding(0, 1).
		Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" writing copy for \"" + m.lastPrompt + "\"..."))
	}

	return b.String()
}

// returns the raw text of the last generation
func (m *EditorModel) Output() string {
	return m.output
}
