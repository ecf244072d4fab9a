package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// default API endpoint when none is configured
	DefaultEndpoint = "http://localhost:5000"

	// generation waits on a simulated delay server-side, leave headroom
	defaultRequestTimeout = 30 * time.Second
)

// manages HTTP requests to the justcopy REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new REST client; an empty endpoint uses DefaultEndpoint
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// returns the base URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// sends a generate request to the REST API
func (c *Client) Generate(ctx context.Context, prompt string) (*GenerateResult, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var result generateResponse
	if err := c.do(ctx, http.MethodPost, "/api/generate", payload, &result); err != nil {
		return nil, err
	}

	return &GenerateResult{
		Prompt:         prompt,
		Content:        result.Content,
		WordsGenerated: result.Metadata.WordsGenerated,
		Timestamp:      result.Metadata.Timestamp,
	}, nil
}

// fetches the template catalog
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	var result templatesResponse
	if err := c.do(ctx, http.MethodGet, "/api/templates", nil, &result); err != nil {
		return nil, err
	}

	return result.Templates, nil
}

// fetches the server health status
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var result HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// handle error responses
	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Detail: errResp.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that sends a generate request
func (c *Client) GenerateCmd(prompt string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		result, err := c.Generate(ctx, prompt)
		if err != nil {
			return GenerateErrorMsg{prompt: prompt, err: err}
		}

		return GenerateResultMsg{result: *result}
	}
}

// returns a tea.Cmd that loads the welcome screen data
func (c *Client) StatusCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		msg := StatusMsg{}

		health, err := c.Health(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.health = health

		msg.templates, msg.err = c.Templates(ctx)
		return msg
	}
}

// REST API request/response types

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Success  bool   `json:"success"`
	Content  string `json:"content"`
	Metadata struct {
		WordsGenerated int    `json:"wordsGenerated"`
		Timestamp      string `json:"timestamp"`
	} `json:"metadata"`
}

type templatesResponse struct {
	Templates []Template `json:"templates"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
