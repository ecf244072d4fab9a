package main

import (
	"fmt"
	"strconv"

	"codeberg.org/justcopy/server/internal/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTemplatesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available content templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient(v).Templates(cmd.Context())
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "CATEGORY", "DESCRIPTION").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return tui.HeaderStyle
					}
					return tui.CellStyle
				})

			for _, tmpl := range list {
				t.Row(strconv.Itoa(tmpl.ID), tmpl.Name, tmpl.Category, tmpl.Description)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
