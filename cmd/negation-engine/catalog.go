package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/negation-engine/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the built-in bad-descriptor catalog",
	Long: `Catalog prints the built-in descriptor catalog in source order, one
entry per line, with a trailing count. Duplicate spellings in the
source list are preserved.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	descs := catalog.Descriptors()

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(descs)
	}

	for _, d := range descs {
		fmt.Println(d)
	}
	fmt.Printf("\n%d descriptors\n", len(descs))
	return nil
}
