package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/common/logger"
	"github.com/vcsa-tools/vclm/internal/common/output"
	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current download settings",
	Long:  `Print the appliance's current update policy as JSON, exactly as returned by the API.`,
	Run:   runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	client, err := newClient(cmd)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	var policy map[string]any
	err = client.WithSession(func(c *vsphere.Client) error {
		policy, err = lifecycle.GetDownloadSettings(c)
		return err
	})
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	output.PrintJSON(policy)
}
