package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflow/internal/storage"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored state so the next start loads sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset discards all tasks; pass --yes to confirm")
			}
			repo, err := app.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			err = repo.Delete(cmd.Context(), storage.KeyState)
			switch {
			case errors.Is(err, storage.ErrNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to reset")
				return nil
			case err != nil:
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "stored state deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}
