// Package cli wires the taskflow commands: the interactive TUI by default
// plus scriptable subcommands over the same database.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflow/internal/config"
	"github.com/sandeepkv93/taskflow/internal/storage"
)

type App struct {
	Config config.RuntimeConfig
}

func NewRootCmd() *cobra.Command {
	app := &App{Config: config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())}

	cmd := &cobra.Command{
		Use:          "taskflow",
		Short:        "Tasks, boards, habits and a pomodoro timer in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskflow

  # Write the current state to a JSON snapshot
  taskflow export --out backup.json

  # Show which achievements are unlocked
  taskflow achievements
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Config.DBPath, "db", app.Config.DBPath, "Path to the SQLite database (env TASKFLOW_DB_PATH)")
	cmd.PersistentFlags().StringVar(&app.Config.LogLevel, "log-level", app.Config.LogLevel, "Log level: debug, info, warn, error (env TASKFLOW_LOG_LEVEL)")

	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newAchievementsCmd(app))
	cmd.AddCommand(newSettingsCmd(app))

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *App) openRepository() (*storage.SQLiteRepository, error) {
	repo, err := storage.OpenSQLite(a.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", a.Config.DBPath, err)
	}
	return repo, nil
}
