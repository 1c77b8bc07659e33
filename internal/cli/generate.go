package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/formspec-tools/formspecgen/internal/elements"
	"github.com/formspec-tools/formspecgen/internal/fetch"
	"github.com/formspec-tools/formspecgen/internal/storage"
)

var (
	generateInput    string
	generateURL      string
	generateOut      string
	generateJSON     bool
	generateSnapshot bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Parse the element documentation and write the definition tables",
	Long: `Fetch lua_api.txt (or read a local copy), parse the Elements section and
write the generated definition files.

elements.lua and elements.yaml are always written; --json adds a plain JSON
dump of the same table. With --snapshot the run is also recorded in the
snapshot history database for later comparison with 'formspecgen diff'.

Example:
  formspecgen generate -o doc/
  formspecgen generate -i testdata/lua_api.txt --json`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var doc, source string
	if generateInput != "" {
		raw, err := os.ReadFile(generateInput)
		if err != nil {
			return err
		}
		doc, source = string(raw), generateInput
	} else {
		fmt.Printf("Fetching %s...\n", generateURL)
		var err error
		doc, err = fetch.Document(cmd.Context(), generateURL)
		if err != nil {
			return err
		}
		source = generateURL
	}

	table, err := elements.Parse(doc)
	if err != nil {
		return err
	}

	luaPath := filepath.Join(generateOut, "elements.lua")
	yamlPath := filepath.Join(generateOut, "elements.yaml")
	fmt.Printf("Writing %s...\n", yamlPath)
	if err := storage.WriteYAML(yamlPath, table); err != nil {
		return err
	}
	fmt.Printf("Writing %s...\n", luaPath)
	if err := storage.WriteLua(luaPath, table); err != nil {
		return err
	}
	if generateJSON {
		jsonPath := filepath.Join(generateOut, "elements.json")
		fmt.Printf("Writing %s...\n", jsonPath)
		if err := storage.WriteJSON(jsonPath, table); err != nil {
			return err
		}
	}

	if generateSnapshot {
		store, err := storage.OpenSnapshotStore(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		snap, err := store.Save(table, source)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded snapshot %s\n", snap.ID)
	}

	fmt.Printf("Done. %d elements.\n", len(table))
	return nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "read lua_api.txt from a local file instead of fetching")
	generateCmd.Flags().StringVar(&generateURL, "url", fetch.DefaultURL, "documentation URL to fetch")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", ".", "directory for the generated files")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "also write elements.json")
	generateCmd.Flags().BoolVar(&generateSnapshot, "snapshot", false, "record this run in the snapshot history")
	rootCmd.AddCommand(generateCmd)
}
