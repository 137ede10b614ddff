package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/storage"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the user profile and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			settings, err := storage.LoadSettings(cmd.Context(), repo)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			user, err := storage.LoadUser(cmd.Context(), repo)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("load user: %w", err)
			}
			printSettings(cmd, user, settings)
			return nil
		},
	}
	cmd.AddCommand(newSettingsSetCmd(app))
	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		name          string
		email         string
		theme         string
		language      string
		priority      string
		defaultList   string
		notifications bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings; only the flags given are changed",
		Example: strings.TrimSpace(`
  taskflow settings set --theme light --notifications=false
  taskflow settings set --name "Sam" --default-priority high`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()
			flags := cmd.Flags()

			settings, err := storage.LoadSettings(ctx, repo)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			if flags.Changed("theme") {
				settings.Theme = theme
			}
			if flags.Changed("language") {
				settings.Language = language
			}
			if flags.Changed("notifications") {
				settings.Notifications = notifications
			}
			if flags.Changed("default-priority") {
				p, err := model.ParsePriority(priority)
				if err != nil {
					return err
				}
				settings.DefaultPriority = p
			}
			if flags.Changed("default-list") {
				settings.DefaultListID = defaultList
			}
			if err := storage.SaveSettings(ctx, repo, settings); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}

			user, err := ensureUser(ctx, repo)
			if err != nil {
				return fmt.Errorf("load user: %w", err)
			}
			if flags.Changed("name") || flags.Changed("email") {
				if flags.Changed("name") {
					user.Name = name
				}
				if flags.Changed("email") {
					user.Email = email
				}
				if err := storage.SaveUser(ctx, repo, user); err != nil {
					return fmt.Errorf("save user: %w", err)
				}
			}
			printSettings(cmd, user, settings)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&theme, "theme", "", "Markdown theme: dark, light, notty")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&priority, "default-priority", "", "Priority for new tasks: none, low, medium, high")
	cmd.Flags().StringVar(&defaultList, "default-list", "", "List id for new tasks")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Enable notifications")
	return cmd
}

func printSettings(cmd *cobra.Command, u model.User, s model.Settings) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", u.Name)
	if u.Email != "" {
		fmt.Fprintf(w, "email\t%s\n", u.Email)
	}
	fmt.Fprintf(w, "theme\t%s\n", s.Theme)
	fmt.Fprintf(w, "language\t%s\n", s.Language)
	fmt.Fprintf(w, "notifications\t%t\n", s.Notifications)
	fmt.Fprintf(w, "default priority\t%s\n", s.DefaultPriority)
	fmt.Fprintf(w, "default list\t%s\n", s.DefaultListID)
	fmt.Fprintf(w, "bottom nav\t%s\n", strings.Join(s.BottomNav, ", "))
	_ = w.Flush()
}
