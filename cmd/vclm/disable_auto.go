package main

import (
	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var disableAutoCmd = &cobra.Command{
	Use:   "disable-auto",
	Short: "Disable automatic patch downloads",
	Run: func(cmd *cobra.Command, args []string) {
		runOperation(cmd, "Automatic downloads disabled", func(c *vsphere.Client) (*lifecycle.Result, error) {
			return lifecycle.DisableAutoDownload(c)
		})
	},
}

func init() {
	rootCmd.AddCommand(disableAutoCmd)
}
