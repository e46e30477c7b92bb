package cmd

import (
	"fmt"

	"floormark/server"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of floormark",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %v\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
