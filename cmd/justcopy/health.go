package main

import (
	"fmt"

	"codeberg.org/justcopy/server/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newHealthCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(v)

			status, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s is unreachable: %w", client.Endpoint(), err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n",
				tui.SuccessStyle.Render(status.Status), client.Endpoint(), status.Message)
			return err
		},
	}
}
