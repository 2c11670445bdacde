package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/pkg/corpus"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a corpus tree file between JSON and YAML",
	Long:  `Decodes a corpus tree from the input file and re-encodes it into the output file; the formats are picked from the file extensions.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args[0], args[1]); err != nil {
			fmt.Printf("Convert failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(in, out string) error {
	tree, err := corpus.DecodeFile(in)
	if err != nil {
		return err
	}
	if err := corpus.EncodeFile(out, tree); err != nil {
		return err
	}
	logger.Info("corpus tree converted", "from", in, "to", out)
	return nil
}
