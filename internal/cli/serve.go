package cli

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"todolist/internal/handlers"
	"todolist/internal/server"
)

func newServeCommand(opts *rootOptions, web fs.FS) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the web server.

The address and database path come from the config file, or from
the PORT and DB_PATH environment variables when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts, web)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions, web fs.FS) error {
	ctx := cmd.Context()

	a, err := opts.load(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tmpl, err := server.ParseTemplates(web)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	handler, err := server.NewRouter(handlers.New(a.Router, tmpl), web)
	if err != nil {
		return err
	}

	a.Logger.Info("to-do list ready", "tasks", len(a.Router.Snapshot()), "db", a.Config.Storage.Path)

	return server.Run(ctx, a.Config.Server.Addr, handler, a.Config.Server.ShutdownTimeout, a.Logger)
}
