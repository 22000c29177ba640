// Package commands implements the CLI commands for ghwu.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ghwu/internal/app"
	"go.trai.ch/ghwu/internal/build"
	"go.trai.ch/ghwu/internal/core/domain"
)

// CLI represents the command line interface for ghwu.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (app.Summary, error)
	Resolve(ctx context.Context, refs []string, w io.Writer) error
	ConfigureLogging(json, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "ghwu",
		Short:         "Update actions and container images pinned in GitHub workflows",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			c.app.ConfigureLogging(jsonLogs, verbose)
		},
		RunE: c.runUpdate,
	}

	rootCmd.Flags().BoolP("dry-run", "n", false, "Report outdated references without rewriting workflows")
	rootCmd.Flags().StringP("output-format", "f", "", "Output format: standard or github-warning (default from config, else standard)")
	rootCmd.Flags().Bool("error-on-outdated", false, "Exit with status 2 when outdated references are found")
	rootCmd.Flags().StringP("dir", "d", "", "Workflow directory (default from config, else "+domain.DefaultWorkflowDir+")")
	rootCmd.Flags().StringP("config", "c", domain.DefaultConfigFile, "Configuration file")
	rootCmd.Flags().String("metrics-file", "", "Write resolver metrics in Prometheus text format to this file")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logs")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Must run after -v is taken by --verbose, otherwise cobra gives it to --version.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runUpdate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	dryRun, _ := flags.GetBool("dry-run")
	format, _ := flags.GetString("output-format")
	errorOnOutdated, _ := flags.GetBool("error-on-outdated")
	dir, _ := flags.GetString("dir")
	configPath, _ := flags.GetString("config")
	metricsFile, _ := flags.GetString("metrics-file")

	_, err := c.app.Run(cmd.Context(), app.RunOptions{
		ConfigPath:      configPath,
		ConfigRequired:  flags.Changed("config"),
		Dir:             dir,
		OutputFormat:    format,
		DryRun:          dryRun,
		ErrorOnOutdated: errorOnOutdated,
		MetricsFile:     metricsFile,
	})
	return err
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
