package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/common/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
