package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours-tracker/internal/tracker"
	"github.com/Tiliavir/hours-tracker/internal/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

// confirmDelete is replaced in tests.
var confirmDelete = ui.ConfirmDelete

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, ok := store.Get(id); !ok {
		return usageError(fmt.Errorf("no entry with id %d", id))
	}
	if !deleteYes && !interactive() {
		return usageError(errors.New("refusing to delete without confirmation: pass --yes"))
	}

	var promptErr error
	confirm := func() bool {
		if deleteYes {
			return true
		}
		ok, err := confirmDelete()
		promptErr = err
		return ok
	}

	session := tracker.NewSession(store, now, cfg.PageSize)
	removed, err := session.Delete(ctx, id, confirm)
	if promptErr != nil {
		return promptErr
	}
	if err != nil {
		return storageError(err)
	}
	if !removed {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}
	fmt.Fprintf(out, "Deleted entry %d.\n", id)
	return nil
}
