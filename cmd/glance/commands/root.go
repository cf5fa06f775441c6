// Package commands implements the command line interface for glance.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/glance/internal/app"
	"go.trai.ch/glance/internal/build"
	"go.trai.ch/glance/internal/ui/output"
)

// CLI represents the command line interface for glance.
type CLI struct {
	app         Application
	rootCmd     *cobra.Command
	getwd       func() (string, error)
	interactive func() bool
}

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:         a,
		getwd:       os.Getwd,
		interactive: output.Interactive,
	}

	rootCmd := &cobra.Command{
		Use:           "glance",
		Short:         "Explore a CSV file in a local web dashboard",
		Long:          "glance loads one CSV file and serves a dashboard with a data table, a plot explorer and summary statistics.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.serve,
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

	rootCmd.Flags().StringP("config", "c", "", "Path to the config file (default glance.yaml if present)")
	rootCmd.Flags().StringP("data", "d", "", "Path to the CSV file (default open-meteo-subset.csv)")
	rootCmd.Flags().StringP("addr", "a", "", "Address to listen on (default 127.0.0.1:8501)")
	rootCmd.Flags().Bool("no-browser", false, "Do not open the dashboard in a browser")
	rootCmd.Flags().Bool("log-json", false, "Write logs as JSON")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) serve(cmd *cobra.Command, _ []string) error {
	cwd, err := c.getwd()
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	dataPath, _ := cmd.Flags().GetString("data")
	addr, _ := cmd.Flags().GetString("addr")
	noBrowser, _ := cmd.Flags().GetBool("no-browser")
	// Browsers only open for interactive sessions.
	noBrowser = noBrowser || !c.interactive()
	logJSON, _ := cmd.Flags().GetBool("log-json")

	return c.app.Serve(cmd.Context(), app.ServeOptions{
		Cwd:        cwd,
		ConfigPath: configPath,
		DataPath:   dataPath,
		Addr:       addr,
		NoBrowser:  noBrowser,
		LogJSON:    logJSON,
	})
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
