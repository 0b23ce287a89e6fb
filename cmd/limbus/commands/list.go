package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/limbus/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List localizations of the selected source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if len(entries) == 0 {
				p.line(style.Idle, "The catalog is empty")
				return nil
			}
			for _, e := range entries {
				loc := e.Localization
				switch {
				case e.Outdated():
					p.line(style.Notice, "%s %s %s (installed %s)",
						loc.ID, loc.Name, loc.Version, e.InstalledVersion)
				case e.Installed:
					p.line(style.Ok, "%s %s %s", loc.ID, loc.Name, loc.Version)
				default:
					p.line(style.Idle, "%s %s %s", loc.ID, loc.Name, loc.Version)
				}
			}
			return nil
		},
	}
}
