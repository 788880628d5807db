package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var (
	sourceType string
	umdsURL    string
)

var setSourceCmd = &cobra.Command{
	Use:   "set-source",
	Short: "Set the download source (INTERNET or UMDS)",
	Long: `Switch between downloading patches directly from the internet and a
locally hosted UMDS depot. A UMDS depot URL is registered as a subscribed
content library on a best-effort basis.

Examples:
  vclm set-source --type INTERNET
  vclm set-source --type UMDS --umds-url https://umds.local/depot`,
	Run: func(cmd *cobra.Command, args []string) {
		runOperation(cmd, fmt.Sprintf("Download source set to %s", sourceType), func(c *vsphere.Client) (*lifecycle.Result, error) {
			return lifecycle.SetSource(c, sourceType, umdsURL)
		})
	},
}

func init() {
	setSourceCmd.Flags().StringVar(&sourceType, "type", "", "Download source type (INTERNET or UMDS)")
	setSourceCmd.Flags().StringVar(&umdsURL, "umds-url", "", "UMDS depot URL (required for UMDS)")
	setSourceCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(setSourceCmd)
}
