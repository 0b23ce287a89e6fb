package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/limbus/internal/engine/orchestrator"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update installed localizations, then start the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noLaunch, _ := cmd.Flags().GetBool("no-launch")
			return c.update(cmd, orchestrator.Options{NoLaunch: noLaunch})
		},
	}
	cmd.Flags().Bool("no-launch", false, "Do not start the game after updating")
	return cmd
}

func (c *CLI) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Update installed localizations and start the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.update(cmd, orchestrator.Options{})
		},
	}
}

func (c *CLI) update(cmd *cobra.Command, opts orchestrator.Options) error {
	p := newPrinter(cmd.OutOrStdout())
	unsubscribe := c.app.Subscribe(p.event)
	defer unsubscribe()

	_, err := c.app.Update(cmd.Context(), opts)
	return err
}
