package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formspec-tools/formspecgen/internal/storage"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSnapshotStore(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		snaps, err := store.List()
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Println("No snapshots recorded. Run 'formspecgen generate --snapshot' first.")
			return nil
		}

		fmt.Printf("%-10s %-20s %9s  %s\n", "ID", "CREATED", "ELEMENTS", "SOURCE")
		for _, snap := range snaps {
			fmt.Printf("%-10s %-20s %9d  %s\n",
				snap.ID[:8], snap.CreatedAt.Format("2006-01-02 15:04:05"),
				snap.ElementCount, snap.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&historyDBPath, "db", ".formspecgen/history.db", "path of the snapshot history database")
	rootCmd.AddCommand(historyCmd)
}
