package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(client *Client) *Model {
	return &Model{
		state:   StateWelcome,
		client:  client,
		welcome: NewWelcome(client.Endpoint()),
		editor:  NewEditor(client),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.client.StatusCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from welcome screen, not from editor
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		// in editor, ctrl+c goes back to welcome
		if msg.String() == "ctrl+c" && m.state == StateEditor {
			m.state = StateWelcome
			return m, nil
		}

		// any key dismisses an error
		if m.err != nil {
			m.err = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterEditorMsg:
		m.state = StateEditor
		return m, m.editor.Init()

	case refreshMsg:
		return m, m.client.StatusCmd()

	case StatusMsg:
		m.welcome, _ = m.welcome.Update(msg)
		return m, nil

	// generation results arrive even if the user went back to welcome
	case GenerateResultMsg, GenerateErrorMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateEditor:
		return m.updateEditor(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateEditor:
		return m.editor.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press any key to continue, Ctrl+C to exit\n", err)
}
