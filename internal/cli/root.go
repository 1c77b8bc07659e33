package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formspecgen",
	Short: "Generate formspec element definitions from lua_api.txt",
	Long: `formspecgen - Formspec Element Table Generator

formspecgen parses the formspec element documentation in the Minetest
engine's lua_api.txt and produces a normalized table of element signatures:
for every element, the accepted parameter shapes with their types, optional
trailing parameters and repeatable tails.

Outputs:
  - elements.lua   Lua table literal for the downstream formspec AST library
  - elements.yaml  YAML dump for reviewing changes between doc versions

Quick Start:
  formspecgen generate                 Fetch the docs and write both files
  formspecgen generate -i lua_api.txt  Parse a local copy instead
  formspecgen generate --snapshot      Also record the run in the history db
  formspecgen history                  List recorded snapshots
  formspecgen diff <old> <new>         Compare two snapshots`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
