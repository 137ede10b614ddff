package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflow/internal/storage"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored state with a JSON snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := storage.ReadSnapshotFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot %s: %w", args[0], err)
			}
			repo, err := app.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := storage.NewPersister(repo).Save(cmd.Context(), state); err != nil {
				return fmt.Errorf("save state: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d tasks, %d lists, %d habits\n",
				len(state.Tasks), len(state.Lists), len(state.Habits))
			return nil
		},
	}
	return cmd
}
