package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"codeberg.org/justcopy/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:          "justcopy",
		Short:        "Marketing copy from a single prompt",
		Long:         "justcopy talks to a justcopy API server. Run without a subcommand to open the interactive editor.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := tui.NewApp(newClient(v))
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running justcopy: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("endpoint", tui.DefaultEndpoint, "API base URL (env JUSTCOPY_API_ENDPOINT)")
	flags.Duration("timeout", 30*time.Second, "request timeout (env JUSTCOPY_TIMEOUT)")
	_ = v.BindPFlag("api_endpoint", flags.Lookup("endpoint"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))

	rootCmd.AddCommand(newGenerateCmd(v))
	rootCmd.AddCommand(newTemplatesCmd(v))
	rootCmd.AddCommand(newHealthCmd(v))

	return rootCmd
}

// reads settings from flags and JUSTCOPY_ prefixed environment variables
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("JUSTCOPY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

func newClient(v *viper.Viper) *tui.Client {
	return tui.NewClient(v.GetString("api_endpoint"), v.GetDuration("timeout"))
}
