package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/pkg/corpus"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check corpus tree files for structural consistency",
	Long:  `Decodes each file and reports malformed trees, then prints slot and depth stats for the valid ones.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All corpus files are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(paths []string) error {
	for _, path := range paths {
		tree, err := corpus.DecodeFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		stats := cli.Stats(tree)
		fmt.Printf("%s: %d slots, depth %d\n", path, stats.Slots, stats.MaxDepth)
	}
	return nil
}
