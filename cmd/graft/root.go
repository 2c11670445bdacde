package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/logging"
)

// logger is configured by the persistent pre-run and shared by all
// subcommands.
var logger *slog.Logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "graft",
	Short: "Graft is a toolbox for structured test-input corpora",
	Long: `Graft inspects, converts and serves the corpus trees produced by the
graft input-generation library.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("log-level")
		level, err := cli.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		if levelFlag != "" {
			logger = logging.New(level)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Enable logging at this level (debug, info, warn, error)")
}
