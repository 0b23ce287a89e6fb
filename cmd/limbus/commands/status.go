package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/limbus/internal/app"
	"go.trai.ch/limbus/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show installed localizations and available updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verify, _ := cmd.Flags().GetBool("verify")

			status, err := c.app.Status(cmd.Context(), app.StatusOptions{Verify: verify})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.line(style.Active, "Source: %s", status.Source)
			if status.GameDirectory == "" {
				p.line(style.Failed, "Game directory: not found")
			} else {
				p.line(style.Active, "Game directory: %s", status.GameDirectory)
			}

			if len(status.Installed) == 0 {
				p.line(style.Idle, "No localizations installed")
			}
			for _, item := range status.Installed {
				printInstalled(p, item)
			}

			if status.UpdateAvailable {
				p.line(style.Notice, "Launcher %s is available (running %s)",
					status.LatestRelease, status.Version)
			}
			return nil
		},
	}
	cmd.Flags().Bool("verify", false, "Fingerprint every installed localization")
	return cmd
}

func printInstalled(p *printer, item app.InstalledStatus) {
	suffix := ""
	if item.Fingerprint != "" {
		suffix = " " + p.faint(item.Fingerprint)
	}

	switch {
	case item.Latest == "":
		p.line(style.Notice, "%s %s from %s, not in the catalog%s", item.ID, item.Version, item.Source, suffix)
	case item.Latest != item.Version:
		p.line(style.Notice, "%s %s from %s, update to %s%s", item.ID, item.Version, item.Source, item.Latest, suffix)
	default:
		p.line(style.Ok, "%s %s from %s%s", item.ID, item.Version, item.Source, suffix)
	}
}
