package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateEditor
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	client  *Client
	welcome *Welcome
	editor  *EditorModel
}

// welcome screen model
type Welcome struct {
	endpoint  string
	input     string
	commands  []Command
	health    *HealthStatus
	templates []Template
	loading   bool
	statusErr error
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}

// prompt editor with rendered output
type EditorModel struct {
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	client     *Client
	width      int
	height     int
	output     string
	metadata   string
	lastPrompt string
	isFetching bool
	hasOutput  bool
}

// generated copy as returned by the API
type GenerateResult struct {
	Prompt         string
	Content        string
	WordsGenerated int
	Timestamp      string
}

// template catalog entry as returned by the API
type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// health check payload
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// non-200 response from the API
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Detail)
	}

	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the editor state
type EnterEditorMsg struct{}

// sent when a generation completes
type GenerateResultMsg struct {
	result GenerateResult
}

// sent when a generation fails
type GenerateErrorMsg struct {
	prompt string
	err    error
}

// sent when the welcome screen data has loaded
type StatusMsg struct {
	health    *HealthStatus
	templates []Template
	err       error
}
