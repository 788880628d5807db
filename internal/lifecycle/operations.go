package lifecycle

import (
	"encoding/json"
	"fmt"

	"github.com/vcsa-tools/vclm/internal/vsphere"
)

// vSphere REST API paths
const (
	updatePolicyPath      = "/api/appliance/update/policy"
	subscribedLibraryPath = "/api/content/subscribed-library"
)

// Result carries the outcome of a settings write: the re-read policy
// document plus the depot-registration outcome. DepotErr is informational
// only; a failed registration never fails the operation that triggered it.
type Result struct {
	Policy   map[string]any
	DepotErr error
}

// GetDownloadSettings retrieves the current update policy. The remote
// representation is returned as-is, with no renaming or filtering.
func GetDownloadSettings(client *vsphere.Client) (map[string]any, error) {
	data, err := client.Get(updatePolicyPath)
	if err != nil {
		return nil, err
	}

	var policy map[string]any
	if err := json.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("decoding update policy: %w", err)
	}
	return policy, nil
}

// Configure applies the full download settings to the appliance and returns
// the re-read policy. When the source is a UMDS depot with a URL, the depot
// is registered as a subscribed content library on a best-effort basis; the
// outcome lands in Result.DepotErr.
func Configure(client *vsphere.Client, settings DownloadSettings) (*Result, error) {
	policy := map[string]any{
		"custom_URL":     "",
		"auto_stage":     settings.AutoDownloadEnabled,
		"check_schedule": []map[string]any{settings.Schedule.Wire()},
		"username":       "",
		"password":       "",
	}

	// Omitting the proxy key entirely is how proxy removal is communicated
	// to the appliance.
	if settings.Proxy.Enabled {
		policy["proxy"] = settings.Proxy.Wire()
	}

	if _, err := client.Put(updatePolicyPath, policy); err != nil {
		return nil, err
	}

	result := &Result{}
	if settings.Source.Type == SourceUMDS && settings.Source.UMDSURL != "" {
		result.DepotErr = registerDepot(client, settings.Source.UMDSURL)
	}

	current, err := GetDownloadSettings(client)
	if err != nil {
		return nil, err
	}
	result.Policy = current
	return result, nil
}

// EnableAutoDownload turns on automatic patch downloads with defaults.
// This is a reset, not a merge: any custom schedule or proxy on the
// appliance is replaced by the defaults.
func EnableAutoDownload(client *vsphere.Client) (*Result, error) {
	return Configure(client, DefaultDownloadSettings())
}

// DisableAutoDownload turns off automatic checks and downloads entirely.
// Source and proxy are written back as defaults, not current values.
func DisableAutoDownload(client *vsphere.Client) (*Result, error) {
	settings := DefaultDownloadSettings()
	settings.AutoCheckEnabled = false
	settings.AutoDownloadEnabled = false
	settings.Schedule.Enabled = false
	return Configure(client, settings)
}

// SetSchedule updates the check schedule. Only auto_stage is carried
// forward from the current policy; see mergeForward.
func SetSchedule(client *vsphere.Client, day string, hour, minute int) (*Result, error) {
	schedule, err := NewDownloadSchedule(true, day, hour, minute)
	if err != nil {
		return nil, err
	}

	settings, err := mergeForward(client)
	if err != nil {
		return nil, err
	}
	settings.Schedule = schedule
	return Configure(client, settings)
}

// SetProxy configures a download proxy. Only auto_stage is carried forward
// from the current policy; see mergeForward.
func SetProxy(client *vsphere.Client, server string, port int, username, password string) (*Result, error) {
	settings, err := mergeForward(client)
	if err != nil {
		return nil, err
	}
	settings.Proxy = ProxySettings{
		Enabled:  true,
		Server:   server,
		Port:     port,
		Username: username,
		Password: password,
	}
	return Configure(client, settings)
}

// ClearProxy removes the download proxy.
func ClearProxy(client *vsphere.Client) (*Result, error) {
	settings, err := mergeForward(client)
	if err != nil {
		return nil, err
	}
	settings.Proxy = ProxySettings{Enabled: false, Port: 80}
	return Configure(client, settings)
}

// SetSource switches between internet and UMDS download sources.
func SetSource(client *vsphere.Client, sourceType, umdsURL string) (*Result, error) {
	source, err := NewDownloadSource(sourceType, umdsURL)
	if err != nil {
		return nil, err
	}

	settings, err := mergeForward(client)
	if err != nil {
		return nil, err
	}
	settings.Source = source
	return Configure(client, settings)
}

// mergeForward reads the current policy and builds a default settings value
// with only auto_stage preserved. Every other field reverts to defaults, so
// set-proxy resets a custom schedule and vice versa. The GET representation
// does not round-trip into DownloadSettings (proxy credentials are never
// returned), so a fuller merge is not possible.
func mergeForward(client *vsphere.Client) (DownloadSettings, error) {
	current, err := GetDownloadSettings(client)
	if err != nil {
		return DownloadSettings{}, err
	}

	settings := DefaultDownloadSettings()
	if autoStage, ok := current["auto_stage"].(bool); ok {
		settings.AutoDownloadEnabled = autoStage
	}
	return settings, nil
}
