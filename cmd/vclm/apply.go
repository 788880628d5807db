package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/common/config"
	"github.com/vcsa-tools/vclm/internal/common/logger"
	"github.com/vcsa-tools/vclm/internal/common/output"
	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var applyConfigPath string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply download settings from a YAML config file",
	Long: `Apply a full set of download settings from a YAML document.

The document carries its own connection block:

  vcenter:
    host: vcenter.example.com
    username: administrator@vsphere.local
    password: secret
    verify_ssl: false
  downloads:
    auto_check_enabled: true
    auto_download_enabled: true
    schedule:
      day: EVERYDAY
      hour: 2
      minute: 0
    source:
      type: INTERNET
    proxy:
      enabled: false`,
	Run: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyConfigPath, "config", "", "Path to YAML config file")
	applyCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) {
	output.PrintInfo("Applying download settings from %s", applyConfigPath)

	cfg, err := config.LoadApply(applyConfigPath)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	settings, err := cfg.Settings()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	client := vsphere.NewClient(
		cfg.VCenter.Host,
		cfg.VCenter.Username,
		cfg.VCenter.Password,
		cfg.VCenter.VerifySSL,
	)

	var result *lifecycle.Result
	err = client.WithSession(func(c *vsphere.Client) error {
		result, err = lifecycle.Configure(c, settings)
		return err
	})
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if result.DepotErr != nil {
		logger.Debug("depot registration: %v", result.DepotErr)
	}

	output.PrintSuccess("Download settings applied")
	output.PrintJSON(result.Policy)
}
