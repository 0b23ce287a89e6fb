package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/limbus/internal/build"
	"go.trai.ch/limbus/internal/ui/style"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "limbus version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)

			check, _ := cmd.Flags().GetBool("check")
			if !check {
				return nil
			}

			latest, newer, err := c.app.CheckVersion(cmd.Context())
			if err != nil {
				return err
			}
			p := newPrinter(cmdo)
			if newer {
				p.line(style.Notice, "%s is available", latest)
			} else {
				p.line(style.Ok, "Up to date")
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "Check for a newer release")
	return cmd
}
