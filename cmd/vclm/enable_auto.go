package main

import (
	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var enableAutoCmd = &cobra.Command{
	Use:   "enable-auto",
	Short: "Enable automatic patch downloads",
	Long: `Enable automatic patch checks and downloads with default settings.

This resets the policy to the defaults (check every day at 02:00, internet
source, no proxy); any custom schedule or proxy is replaced.`,
	Run: func(cmd *cobra.Command, args []string) {
		runOperation(cmd, "Automatic downloads enabled", func(c *vsphere.Client) (*lifecycle.Result, error) {
			return lifecycle.EnableAutoDownload(c)
		})
	},
}

func init() {
	rootCmd.AddCommand(enableAutoCmd)
}
