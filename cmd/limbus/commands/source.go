package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/limbus/internal/ui/style"
)

func (c *CLI) newSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Manage localization catalog sources",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, selected, err := c.app.Sources()
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if len(sources) == 0 {
				p.line(style.Idle, "No sources configured")
			}
			for _, s := range sources {
				if s.Name == selected {
					p.line(style.Ok, "%s %s", s.Name, s.URL)
					continue
				}
				p.line(style.Idle, "%s %s", s.Name, s.URL)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add or replace a source",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.AddSource(cmd.Context(), args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RemoveSource(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "select <name>",
		Short: "Select the source used for installs and updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SelectSource(cmd.Context(), args[0])
		},
	})

	return cmd
}
