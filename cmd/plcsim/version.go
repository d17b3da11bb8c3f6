// cmd/plcsim/version.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version mirrors the firmware revision the simulated device reports.
const Version = "2.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of plcsim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plcsim version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
