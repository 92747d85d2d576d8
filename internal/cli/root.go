// Package cli provides the todolist command-line interface.
package cli

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todolist/internal/app"
	"todolist/internal/config"
	"todolist/internal/logging"
)

// configEnv names the environment variable consulted when --config is not given.
const configEnv = "TODOLIST_CONFIG"

type rootOptions struct {
	configPath string
}

// NewRootCommand creates the root command. web holds the embedded
// templates/ and static/ trees served by the serve command.
func NewRootCommand(web fs.FS, version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "todolist",
		Short: "A small to-do list with a browser UI",
		Long: `todolist keeps a single to-do list and serves it as a web page.

Running without a subcommand starts the web server. The tasks
subcommands work on the same saved list from the terminal.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (main handles them)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts, web)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv(configEnv),
		"path to a YAML or TOML config file (env "+configEnv+")")

	root.AddCommand(
		newServeCommand(opts, web),
		newTasksCommand(opts),
	)

	return root
}

// load reads configuration and builds the logger and application for a command.
func (o *rootOptions) load(ctx context.Context, cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	return app.New(ctx, cfg, logger)
}
