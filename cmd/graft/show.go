package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/pkg/corpus"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Pretty-print a corpus tree file",
	Long:  `Decodes a corpus tree from a JSON or YAML file and renders it as an indented listing, colorized when stdout is a terminal.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if err := runShow(args[0], !noColor && cli.StdoutIsTerminal()); err != nil {
			fmt.Printf("Show failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runShow(path string, color bool) error {
	tree, err := corpus.DecodeFile(path)
	if err != nil {
		return err
	}
	fmt.Print(cli.RenderTree(tree, color))
	return nil
}
