package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadApplyDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
vcenter:
  host: vcenter.example.com
  username: administrator@vsphere.local
  password: secret
`)

	cfg, err := LoadApply(path)
	if err != nil {
		t.Fatalf("LoadApply: %v", err)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	if !settings.AutoCheckEnabled || !settings.AutoDownloadEnabled {
		t.Error("absent download flags should default to enabled")
	}
	if settings.Schedule != (lifecycle.DownloadSchedule{Enabled: true, Day: lifecycle.DayEveryday, Hour: 2, Minute: 0}) {
		t.Errorf("schedule defaults wrong: %+v", settings.Schedule)
	}
	if settings.Source.Type != lifecycle.SourceInternet {
		t.Errorf("source default = %q", settings.Source.Type)
	}
	if settings.Proxy.Enabled {
		t.Error("proxy should default to disabled")
	}
}

func TestLoadApplyFullDocument(t *testing.T) {
	path := writeFile(t, "config.yaml", `
vcenter:
  host: vcenter.example.com
  username: administrator@vsphere.local
  password: secret
  verify_ssl: true
downloads:
  auto_check_enabled: true
  auto_download_enabled: false
  schedule:
    enabled: true
    day: SUNDAY
    hour: 4
    minute: 45
  source:
    type: UMDS
    umds_url: https://umds.local/depot
  proxy:
    enabled: true
    server: proxy.corp.com
    port: 3128
    username: svc
    password: pw
`)

	cfg, err := LoadApply(path)
	if err != nil {
		t.Fatalf("LoadApply: %v", err)
	}
	if !cfg.VCenter.VerifySSL || cfg.VCenter.Host != "vcenter.example.com" {
		t.Errorf("vcenter block wrong: %+v", cfg.VCenter)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if settings.AutoDownloadEnabled {
		t.Error("auto_download_enabled: false should carry through")
	}
	if settings.Schedule.Day != lifecycle.DaySunday || settings.Schedule.Hour != 4 || settings.Schedule.Minute != 45 {
		t.Errorf("schedule wrong: %+v", settings.Schedule)
	}
	if settings.Source.Type != lifecycle.SourceUMDS || settings.Source.UMDSURL != "https://umds.local/depot" {
		t.Errorf("source wrong: %+v", settings.Source)
	}
	if !settings.Proxy.Enabled || settings.Proxy.Port != 3128 || settings.Proxy.Username != "svc" {
		t.Errorf("proxy wrong: %+v", settings.Proxy)
	}
}

func TestLoadApplyMissingFile(t *testing.T) {
	_, err := LoadApply(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestApplyValidationFailsFast(t *testing.T) {
	path := writeFile(t, "config.yaml", `
downloads:
  schedule:
    day: EVERYDAY
    hour: 99
`)

	cfg, err := LoadApply(path)
	if err != nil {
		t.Fatalf("LoadApply: %v", err)
	}

	_, err = cfg.Settings()
	if !errors.Is(err, lifecycle.ErrInvalidHour) {
		t.Fatalf("expected ErrInvalidHour, got %v", err)
	}
}

func TestResolveConnectionPrecedence(t *testing.T) {
	t.Setenv(EnvHost, "env-host")
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "env-pass")

	tool := &ToolConfig{VCenter: ToolVCenterConfig{Host: "tool-host", Username: "tool-user"}}

	conn, err := ResolveConnection(ConnectionParams{Host: "flag-host"}, tool)
	if err != nil {
		t.Fatalf("ResolveConnection: %v", err)
	}

	if conn.Host != "flag-host" {
		t.Errorf("Host = %q, flags must win over environment", conn.Host)
	}
	if conn.Username != "env-user" || conn.Password != "env-pass" {
		t.Errorf("environment fallback wrong: %+v", conn)
	}
}

func TestResolveConnectionToolConfigFallback(t *testing.T) {
	t.Setenv(EnvHost, "")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "secret")

	tool := &ToolConfig{VCenter: ToolVCenterConfig{Host: "tool-host", Username: "tool-user", VerifySSL: true}}

	conn, err := ResolveConnection(ConnectionParams{}, tool)
	if err != nil {
		t.Fatalf("ResolveConnection: %v", err)
	}
	if conn.Host != "tool-host" || conn.Username != "tool-user" {
		t.Errorf("tool config fallback wrong: %+v", conn)
	}
	if !conn.VerifySSL {
		t.Error("verify_ssl should come from the tool config when the flag is absent")
	}
}

func TestResolveConnectionMissingCredentials(t *testing.T) {
	t.Setenv(EnvHost, "")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")

	_, err := ResolveConnection(ConnectionParams{Host: "h", Username: "u"}, nil)
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLoadToolMissingFileIsEmpty(t *testing.T) {
	cfg, err := LoadToolFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing tool config should not error: %v", err)
	}
	if cfg.VCenter.Host != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadToolFrom(t *testing.T) {
	path := writeFile(t, "config.toml", `
[vcenter]
host = "vcenter.example.com"
username = "administrator@vsphere.local"
verify_ssl = true
`)

	cfg, err := LoadToolFrom(path)
	if err != nil {
		t.Fatalf("LoadToolFrom: %v", err)
	}
	if cfg.VCenter.Host != "vcenter.example.com" || cfg.VCenter.Username != "administrator@vsphere.local" || !cfg.VCenter.VerifySSL {
		t.Errorf("tool config wrong: %+v", cfg.VCenter)
	}
}

func TestToolConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	path, err := ToolConfigPath()
	if err != nil {
		t.Fatalf("ToolConfigPath: %v", err)
	}
	if path != filepath.Join("/tmp/xdg-test", "vclm", "config.toml") {
		t.Errorf("path = %q", path)
	}
}
