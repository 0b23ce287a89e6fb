package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return c.newIDsCmd("install <id>...", "Install localizations from the selected source", c.app.Install)
}

func (c *CLI) newRepairCmd() *cobra.Command {
	return c.newIDsCmd("repair <id>...", "Reinstall localizations from the selected source", c.app.Repair)
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	return c.newIDsCmd("uninstall <id>...", "Remove installed localizations", c.app.Uninstall)
}

func (c *CLI) newIDsCmd(use, short string, run func(context.Context, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}
}
