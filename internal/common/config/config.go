// Package config loads the vclm settings documents: the YAML document
// consumed by "vclm apply" and the optional TOML tool config holding
// connection defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
)

var (
	// ErrConfigNotFound is returned when the apply document does not exist
	ErrConfigNotFound = errors.New("config file not found")
	// ErrMissingCredentials is returned when no complete set of connection
	// credentials could be resolved from flags, environment, or tool config
	ErrMissingCredentials = errors.New("vCenter credentials required: provide --host, --username, --password " +
		"or set VCENTER_HOST, VCENTER_USERNAME, VCENTER_PASSWORD environment variables")
)

// Environment variable fallbacks for connection settings
const (
	EnvHost     = "VCENTER_HOST"
	EnvUsername = "VCENTER_USERNAME"
	EnvPassword = "VCENTER_PASSWORD"
)

// ApplyConfig is the document consumed by "vclm apply".
type ApplyConfig struct {
	VCenter   VCenterConfig   `yaml:"vcenter"`
	Downloads DownloadsConfig `yaml:"downloads"`
}

// VCenterConfig holds the connection block of the apply document.
type VCenterConfig struct {
	Host      string `yaml:"host"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	VerifySSL bool   `yaml:"verify_ssl"`
}

// DownloadsConfig mirrors lifecycle.DownloadSettings in file form.
type DownloadsConfig struct {
	AutoCheckEnabled    bool           `yaml:"auto_check_enabled"`
	AutoDownloadEnabled bool           `yaml:"auto_download_enabled"`
	Schedule            ScheduleConfig `yaml:"schedule"`
	Source              SourceConfig   `yaml:"source"`
	Proxy               ProxyConfig    `yaml:"proxy"`
}

// ScheduleConfig holds the check-schedule block
type ScheduleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Day     string `yaml:"day"`
	Hour    int    `yaml:"hour"`
	Minute  int    `yaml:"minute"`
}

// SourceConfig holds the download-source block
type SourceConfig struct {
	Type    string `yaml:"type"`
	UMDSURL string `yaml:"umds_url"`
}

// ProxyConfig holds the proxy block
type ProxyConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// defaultApplyConfig seeds the defaults so fields absent from the document
// keep the appliance defaults rather than Go zero values.
func defaultApplyConfig() ApplyConfig {
	return ApplyConfig{
		Downloads: DownloadsConfig{
			AutoCheckEnabled:    true,
			AutoDownloadEnabled: true,
			Schedule: ScheduleConfig{
				Enabled: true,
				Day:     lifecycle.DayEveryday,
				Hour:    2,
				Minute:  0,
			},
			Source: SourceConfig{Type: lifecycle.SourceInternet},
			Proxy:  ProxyConfig{Port: 80},
		},
	}
}

// LoadApply reads and parses an apply document from path.
func LoadApply(path string) (*ApplyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := defaultApplyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Settings converts the downloads block into a validated settings value.
// Invalid schedule or source values fail here, before any network call.
func (c *ApplyConfig) Settings() (lifecycle.DownloadSettings, error) {
	schedule, err := lifecycle.NewDownloadSchedule(
		c.Downloads.Schedule.Enabled,
		c.Downloads.Schedule.Day,
		c.Downloads.Schedule.Hour,
		c.Downloads.Schedule.Minute,
	)
	if err != nil {
		return lifecycle.DownloadSettings{}, err
	}

	source, err := lifecycle.NewDownloadSource(c.Downloads.Source.Type, c.Downloads.Source.UMDSURL)
	if err != nil {
		return lifecycle.DownloadSettings{}, err
	}

	return lifecycle.DownloadSettings{
		AutoCheckEnabled:    c.Downloads.AutoCheckEnabled,
		AutoDownloadEnabled: c.Downloads.AutoDownloadEnabled,
		Schedule:            schedule,
		Source:              source,
		Proxy: lifecycle.ProxySettings{
			Enabled:  c.Downloads.Proxy.Enabled,
			Server:   c.Downloads.Proxy.Server,
			Port:     c.Downloads.Proxy.Port,
			Username: c.Downloads.Proxy.Username,
			Password: c.Downloads.Proxy.Password,
		},
	}, nil
}

// ToolConfig is the optional per-user config file with connection defaults,
// so operators do not repeat --host/--username on every invocation. The
// password is deliberately not a field; it comes from flags or environment
// only.
type ToolConfig struct {
	VCenter ToolVCenterConfig `toml:"vcenter"`
}

// ToolVCenterConfig holds connection defaults from the tool config.
type ToolVCenterConfig struct {
	Host      string `toml:"host"`
	Username  string `toml:"username"`
	VerifySSL bool   `toml:"verify_ssl"`
}

// ToolConfigPath returns the tool config location:
// $XDG_CONFIG_HOME/vclm/config.toml, falling back to ~/.config.
func ToolConfigPath() (string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "vclm", "config.toml"), nil
}

// LoadTool reads the tool config. A missing file is not an error; it simply
// yields an empty config.
func LoadTool() (*ToolConfig, error) {
	path, err := ToolConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadToolFrom(path)
}

// LoadToolFrom reads the tool config from a specific path.
func LoadToolFrom(path string) (*ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ToolConfig{}, nil
		}
		return nil, err
	}

	var cfg ToolConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Connection is a fully resolved set of connection parameters.
type Connection struct {
	Host      string
	Username  string
	Password  string
	VerifySSL bool
}

// ConnectionParams carries the raw command-line inputs into resolution.
// VerifySSLSet distinguishes an explicit --verify-ssl=false from the flag
// being absent, so the tool config can fill the gap.
type ConnectionParams struct {
	Host         string
	Username     string
	Password     string
	VerifySSL    bool
	VerifySSLSet bool
}

// ResolveConnection merges flags, environment variables, and the tool
// config, in that precedence order. It returns ErrMissingCredentials when
// host, username, or password is still unset afterwards; this is a usage
// error raised before any network call.
func ResolveConnection(params ConnectionParams, tool *ToolConfig) (Connection, error) {
	conn := Connection{
		Host:      params.Host,
		Username:  params.Username,
		Password:  params.Password,
		VerifySSL: params.VerifySSL,
	}

	if conn.Host == "" {
		conn.Host = os.Getenv(EnvHost)
	}
	if conn.Username == "" {
		conn.Username = os.Getenv(EnvUsername)
	}
	if conn.Password == "" {
		conn.Password = os.Getenv(EnvPassword)
	}

	if tool != nil {
		if conn.Host == "" {
			conn.Host = tool.VCenter.Host
		}
		if conn.Username == "" {
			conn.Username = tool.VCenter.Username
		}
		if !params.VerifySSLSet {
			conn.VerifySSL = tool.VCenter.VerifySSL
		}
	}

	if conn.Host == "" || conn.Username == "" || conn.Password == "" {
		return Connection{}, ErrMissingCredentials
	}
	return conn, nil
}
