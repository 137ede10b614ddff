package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflow/internal/achievement"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/storage"
)

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and whether they are unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			state, _, err := storage.NewPersister(repo).Load(cmd.Context(), model.NewAppState)
			if err != nil {
				return fmt.Errorf("load state: %w", err)
			}
			pending := make(map[string]bool)
			for _, d := range achievement.Evaluate(achievement.Definitions(), state, time.Now()) {
				pending[d.ID] = true
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STATUS\tACHIEVEMENT\tDESCRIPTION")
			for _, d := range achievement.Definitions() {
				status := "locked"
				switch {
				case state.IsUnlocked(d.ID):
					status = "unlocked"
				case pending[d.ID]:
					status = "ready"
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\n", status, d.Icon, d.Title, d.Description)
			}
			return w.Flush()
		},
	}
}
