// Package commands implements the CLI commands for the limbus launcher.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/limbus/internal/adapters/events"
	"go.trai.ch/limbus/internal/app"
	"go.trai.ch/limbus/internal/build"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/engine/orchestrator"
)

// CLI represents the command line interface for limbus.
type CLI struct {
	app     Application
	logs    LogConfigurer
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	List(ctx context.Context) ([]app.ListEntry, error)
	Status(ctx context.Context, opts app.StatusOptions) (*app.Status, error)
	Install(ctx context.Context, ids []string) error
	Repair(ctx context.Context, ids []string) error
	Uninstall(ctx context.Context, ids []string) error
	Update(ctx context.Context, opts orchestrator.Options) (*domain.BatchReport, error)
	Sources() ([]domain.Source, string, error)
	AddSource(ctx context.Context, name, url string) error
	RemoveSource(ctx context.Context, name string) error
	SelectSource(ctx context.Context, name string) error
	GameDirectory() (string, error)
	SetGameDirectory(ctx context.Context, dir string) error
	CheckVersion(ctx context.Context) (string, bool, error)
	Subscribe(h events.Handler) (unsubscribe func())
}

// LogConfigurer is implemented by loggers whose output can be tuned from flags.
type LogConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogConfigurer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "limbus",
		Short:         "Install and update Limbus Company localizations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newRepairCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newPlayCmd())
	rootCmd.AddCommand(c.newSourceCmd())
	rootCmd.AddCommand(c.newGameDirCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
