package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formspec-tools/formspecgen/internal/elements"
	"github.com/formspec-tools/formspecgen/internal/storage"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-id> <new-id>",
	Short: "Compare the element tables of two snapshots",
	Long: `Compare two recorded snapshots and report elements that were added,
removed, or whose accepted shapes changed. Snapshot ids may be abbreviated
to a unique prefix (see 'formspecgen history').`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSnapshotStore(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		before, err := store.Get(args[0])
		if err != nil {
			return err
		}
		after, err := store.Get(args[1])
		if err != nil {
			return err
		}

		diff := elements.Compare(before.Table, after.Table)
		if diff.Empty() {
			fmt.Println("No differences.")
			return nil
		}
		for _, name := range diff.Added {
			fmt.Printf("+ %s\n", name)
		}
		for _, name := range diff.Removed {
			fmt.Printf("- %s\n", name)
		}
		for _, change := range diff.Changed {
			fmt.Printf("~ %s (%d -> %d shapes)\n",
				change.Element, change.ShapesBefore, change.ShapesAfter)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
