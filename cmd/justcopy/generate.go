package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"codeberg.org/justcopy/server/internal/copywriter"
	"codeberg.org/justcopy/server/internal/tui"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var (
		local bool
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Generate copy for a prompt and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			var result *tui.GenerateResult
			var err error

			if local {
				result, err = generateLocal(cmd, prompt, delay)
			} else {
				result, err = newClient(v).Generate(cmd.Context(), prompt)
			}
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "generate in-process instead of calling the API")
	cmd.Flags().DurationVar(&delay, "delay", 0, "simulated generation delay with --local")

	return cmd
}

func generateLocal(cmd *cobra.Command, prompt string, delay time.Duration) (*tui.GenerateResult, error) {
	resp, err := copywriter.New(delay).Generate(cmd.Context(), copywriter.GenerateRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return &tui.GenerateResult{
		Prompt:         prompt,
		Content:        resp.Content,
		WordsGenerated: copywriter.CountWords(resp.Content),
		Timestamp:      time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, nil
}

// renders markdown on a terminal, plain text when piped
func printResult(w io.Writer, result *tui.GenerateResult) error {
	content := result.Content

	if f, ok := w.(*os.File); ok && term.IsTerminal(f.Fd()) {
		width, _, err := term.GetSize(f.Fd())
		if err != nil {
			width = 80
		}

		if rendered, err := tui.RenderContent(content, width); err == nil {
			content = rendered
		}

		_, err = fmt.Fprintf(w, "%s\n%s\n", content,
			tui.InfoStyle.Render(fmt.Sprintf("%d words | %s", result.WordsGenerated, result.Timestamp)))
		return err
	}

	_, err := fmt.Fprintln(w, content)
	return err
}
