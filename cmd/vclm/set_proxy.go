package main

import (
	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var (
	proxyServer   string
	proxyPort     int
	proxyUser     string
	proxyPassword string
)

var setProxyCmd = &cobra.Command{
	Use:   "set-proxy",
	Short: "Configure a download proxy",
	Long: `Configure the HTTP proxy used for patch downloads.

Examples:
  vclm set-proxy --server proxy.corp.com --port 8080
  vclm set-proxy --server proxy.corp.com --port 3128 --proxy-user svc --proxy-password secret`,
	Run: func(cmd *cobra.Command, args []string) {
		runOperation(cmd, "Proxy configured", func(c *vsphere.Client) (*lifecycle.Result, error) {
			return lifecycle.SetProxy(c, proxyServer, proxyPort, proxyUser, proxyPassword)
		})
	},
}

func init() {
	setProxyCmd.Flags().StringVar(&proxyServer, "server", "", "Proxy server hostname")
	setProxyCmd.Flags().IntVar(&proxyPort, "port", 8080, "Proxy port")
	setProxyCmd.Flags().StringVar(&proxyUser, "proxy-user", "", "Proxy username")
	setProxyCmd.Flags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password")
	setProxyCmd.MarkFlagRequired("server")

	rootCmd.AddCommand(setProxyCmd)
}
