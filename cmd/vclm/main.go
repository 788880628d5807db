package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/common/config"
	"github.com/vcsa-tools/vclm/internal/common/logger"
	"github.com/vcsa-tools/vclm/internal/common/output"
	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var (
	// Connection flags
	flagHost      string
	flagUsername  string
	flagPassword  string
	flagVerifySSL bool

	// Output flags
	verbose   bool
	quiet     bool
	noColor   bool
	logToFile bool
)

var rootCmd = &cobra.Command{
	Use:   "vclm",
	Short: "Manage vCenter Lifecycle Manager download settings",
	Long: `Configure the automatic patch-download behavior of a vCenter appliance:
automatic checks and downloads, the check schedule, the download source
(internet or a local UMDS depot), and the download proxy.

Connection settings fall back to the VCENTER_HOST, VCENTER_USERNAME and
VCENTER_PASSWORD environment variables, then to ~/.config/vclm/config.toml.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
		if logToFile {
			if err := logger.Default().EnableFileLogging(); err != nil {
				logger.Warn("file logging unavailable: %v", err)
			}
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Default().Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "vCenter hostname or IP")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "vCenter SSO username")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "vCenter password")
	rootCmd.PersistentFlags().BoolVar(&flagVerifySSL, "verify-ssl", false, "Verify SSL certificates")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-file", false, "Also write logs to the XDG state dir (vclm/logs)")
}

// newClient resolves connection settings from flags, environment and the
// tool config, and builds a session client. It makes no network call.
func newClient(cmd *cobra.Command) (*vsphere.Client, error) {
	tool, err := config.LoadTool()
	if err != nil {
		return nil, err
	}

	conn, err := config.ResolveConnection(config.ConnectionParams{
		Host:         flagHost,
		Username:     flagUsername,
		Password:     flagPassword,
		VerifySSL:    flagVerifySSL,
		VerifySSLSet: cmd.Flags().Changed("verify-ssl"),
	}, tool)
	if err != nil {
		return nil, err
	}

	return vsphere.NewClient(conn.Host, conn.Username, conn.Password, conn.VerifySSL), nil
}

// runOperation executes one reconciliation operation inside a session and
// prints the resulting policy. Depot-registration failures are best effort
// and only surface at debug level.
func runOperation(cmd *cobra.Command, successMsg string, op func(*vsphere.Client) (*lifecycle.Result, error)) {
	client, err := newClient(cmd)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	var result *lifecycle.Result
	err = client.WithSession(func(c *vsphere.Client) error {
		result, err = op(c)
		return err
	})
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if result.DepotErr != nil {
		logger.Debug("depot registration: %v", result.DepotErr)
	}

	output.PrintSuccess("%s", successMsg)
	output.PrintJSON(result.Policy)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
