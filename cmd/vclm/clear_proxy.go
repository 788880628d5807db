package main

import (
	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var clearProxyCmd = &cobra.Command{
	Use:   "clear-proxy",
	Short: "Remove the download proxy",
	Run: func(cmd *cobra.Command, args []string) {
		runOperation(cmd, "Proxy removed", func(c *vsphere.Client) (*lifecycle.Result, error) {
			return lifecycle.ClearProxy(c)
		})
	},
}

func init() {
	rootCmd.AddCommand(clearProxyCmd)
}
