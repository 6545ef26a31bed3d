package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/negation-engine/internal/generate"
	"github.com/pdiddy/negation-engine/internal/normalize"
	"github.com/pdiddy/negation-engine/internal/promptfile"
)

var generateCmd = &cobra.Command{
	Use:   "generate [items...]",
	Short: "Generate one good/bad list pair without the interactive session",
	Long: `Generate runs a single round over items given as arguments (split on
commas and semicolons) or loaded from a YAML items file. Output is the
two labeled blocks, or the full round as JSON with --json.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("items-file", "", "YAML file with an items: list")
	generateCmd.Flags().Bool("json", false, "output the full round as JSON")
	generateCmd.Flags().String("out", "", "also save the round to a YAML file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	items, err := gatherItems(cmd, args)
	if err != nil {
		return err
	}

	gen, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	round, err := gen.BuildRound(items)
	if err != nil {
		return err
	}
	logger.Debug("round built",
		zap.String("round_id", round.ID),
		zap.Int64("seed", round.Seed),
		zap.Int("combined", len(round.Combined)))

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := promptfile.WriteRound(out, round); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved round to", out)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return generate.FormatJSON(round, os.Stdout)
	}
	generate.FormatBlocks(round, os.Stdout)
	return nil
}

// gatherItems resolves the round's items from arguments or a file.
func gatherItems(cmd *cobra.Command, args []string) ([]string, error) {
	itemsFile, _ := cmd.Flags().GetString("items-file")

	if itemsFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("provide items as arguments or --items-file, not both")
		}
		return promptfile.ReadItems(itemsFile)
	}

	items := normalize.Items(strings.Join(args, ","))
	if len(items) == 0 {
		return nil, fmt.Errorf("provide one or more items (e.g. \"cat, dog\") or --items-file")
	}
	return items, nil
}
