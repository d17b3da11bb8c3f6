// cmd/plcsim/root.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plcsim",
	Short: "plcsim is a legacy PLC simulator",
	Long: `plcsim simulates an early-2000s programmable logic controller:
a fixed 100ms scan cycle over a small process image, a fixed-width ASCII
control protocol, and a read-only status document interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		return run(cfgPath, level)
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
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file (defaults are compiled in)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug diagnostics")
}
