package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/taskflow/internal/app"
	"github.com/sandeepkv93/taskflow/internal/assist"
	"github.com/sandeepkv93/taskflow/internal/commands"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
	"github.com/sandeepkv93/taskflow/internal/storage"
	"github.com/sandeepkv93/taskflow/internal/update"
)

const shutdownTimeout = 5 * time.Second

func runTUI(ctx context.Context, a *App) error {
	logger, logFile, err := openLogFile(a.Config)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	repo, err := a.openRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	settings, err := storage.LoadSettings(ctx, repo)
	if err != nil {
		logger.Warn().Err(err).Msg("cli.runTUI: using default settings")
	}
	user, err := ensureUser(ctx, repo)
	if err != nil {
		logger.Warn().Err(err).Msg("cli.runTUI: user profile unavailable")
	}

	clock := clockwork.NewRealClock()
	toasts := notify.NewRecorder(20)
	changes := update.NewChanges()
	notifier := notify.Multi{toasts, changes, notify.Log{Logger: logger}}
	if a.Config.DesktopNotifications && settings.Notifications {
		notifier = append(notifier, notify.Exec{})
	}

	store := app.New(app.Options{
		Persister: storage.NewPersister(repo,
			storage.WithPersisterClock(clock),
			storage.WithDebounce(a.Config.SaveDebounce),
			storage.WithLogger(logger),
		),
		Repository: repo,
		Notifier:   notifier,
		Clock:      clock,
		Logger:     logger,
		Config:     a.Config,
	})
	store.Subscribe(changes.OnChange)
	if err := store.Start(ctx); err != nil {
		return fmt.Errorf("start store: %w", err)
	}
	defer closeStore(store, logger)

	m := update.NewModel(update.Options{
		Store:         store,
		Handlers:      commands.Bind(ctx, store, assist.NewLocal(clock), clock),
		Toasts:        toasts,
		Changes:       changes,
		Clock:         clock,
		MarkdownStyle: settings.Theme,
		UserName:      user.Name,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func closeStore(store *app.Store, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("cli.closeStore: final save failed")
	}
}

// ensureUser returns the stored profile, creating a local one on first run.
func ensureUser(ctx context.Context, repo storage.Repository) (model.User, error) {
	u, err := storage.LoadUser(ctx, repo)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return model.User{}, err
	}
	name := os.Getenv("USER")
	if name == "" {
		name = "me"
	}
	u = model.User{ID: model.NewID(), Name: name}
	if err := storage.SaveUser(ctx, repo, u); err != nil {
		return u, err
	}
	return u, nil
}
