package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renders generated copy for a terminal of the given width
func RenderContent(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(hardBreaks(content))
	if err != nil {
		return "", fmt.Errorf("failed to render content: %w", err)
	}

	return out, nil
}

// templates use single newlines for bullet lists; markdown would fold them
// into one paragraph without an explicit hard break
func hardBreaks(content string) string {
	return strings.ReplaceAll(content, "\n", "  \n")
}

// one-line summary shown under generated output
func formatMetadata(result GenerateResult) string {
	return fmt.Sprintf("%d words | %s", result.WordsGenerated, result.Timestamp)
}
