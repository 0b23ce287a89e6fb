package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGameDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game-dir [path]",
		Short: "Show or set the game directory",
		Long: "Without arguments, prints the game directory in use. With a path, " +
			"validates and stores it. Use --reset to go back to Steam discovery.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reset, _ := cmd.Flags().GetBool("reset")
			switch {
			case reset:
				return c.app.SetGameDirectory(cmd.Context(), "")
			case len(args) == 1:
				return c.app.SetGameDirectory(cmd.Context(), args[0])
			}

			dir, err := c.app.GameDirectory()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.Flags().Bool("reset", false, "Clear the override and discover the Steam install")
	return cmd
}
