package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// Error variables for settings validation errors
var (
	// ErrInvalidDay is returned for a day outside EVERYDAY, MONDAY..SUNDAY
	ErrInvalidDay = errors.New("invalid day")
	// ErrInvalidHour is returned for an hour outside 0-23
	ErrInvalidHour = errors.New("hour must be 0-23")
	// ErrInvalidMinute is returned for a minute outside 0-59
	ErrInvalidMinute = errors.New("minute must be 0-59")
	// ErrInvalidSource is returned for a source type other than INTERNET or UMDS
	ErrInvalidSource = errors.New("invalid download source type")
)

// Schedule days accepted by the appliance
const (
	DayEveryday  = "EVERYDAY"
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// Download source types
const (
	SourceInternet = "INTERNET"
	SourceUMDS     = "UMDS"
)

// ValidDays lists every accepted schedule day, in display order.
var ValidDays = []string{
	DayEveryday, DayMonday, DayTuesday, DayWednesday,
	DayThursday, DayFriday, DaySaturday, DaySunday,
}

// ProxySettings describes the HTTP/HTTPS proxy used when downloading
// patches.
type ProxySettings struct {
	Enabled  bool
	Server   string
	Port     int
	Username string
	Password string
}

// Wire returns the proxy block of the policy document. A disabled proxy
// serializes to {enabled: false} alone; credentials are included only when
// a username is set.
func (p ProxySettings) Wire() map[string]any {
	result := map[string]any{"enabled": p.Enabled}
	if p.Enabled {
		result["server"] = p.Server
		result["port"] = p.Port
		if p.Username != "" {
			result["username"] = p.Username
			result["password"] = p.Password
		}
	}
	return result
}

// DownloadSchedule controls how often vCenter checks for new patches.
type DownloadSchedule struct {
	Enabled bool
	Day     string
	Hour    int
	Minute  int
}

// NewDownloadSchedule validates and builds a check schedule. Validation is
// fail-fast: an out-of-range hour/minute or unknown day never reaches the
// appliance.
func NewDownloadSchedule(enabled bool, day string, hour, minute int) (DownloadSchedule, error) {
	if !validDay(day) {
		return DownloadSchedule{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrInvalidDay, day, strings.Join(ValidDays, ", "))
	}
	if hour < 0 || hour > 23 {
		return DownloadSchedule{}, fmt.Errorf("%w, got %d", ErrInvalidHour, hour)
	}
	if minute < 0 || minute > 59 {
		return DownloadSchedule{}, fmt.Errorf("%w, got %d", ErrInvalidMinute, minute)
	}
	return DownloadSchedule{Enabled: enabled, Day: day, Hour: hour, Minute: minute}, nil
}

// DefaultSchedule returns the appliance default: check every day at 02:00.
func DefaultSchedule() DownloadSchedule {
	return DownloadSchedule{Enabled: true, Day: DayEveryday, Hour: 2, Minute: 0}
}

// Wire returns the schedule entry of the policy document.
func (s DownloadSchedule) Wire() map[string]any {
	return map[string]any{
		"enabled": s.Enabled,
		"day":     s.Day,
		"hour":    s.Hour,
		"minute":  s.Minute,
	}
}

func validDay(day string) bool {
	for _, d := range ValidDays {
		if day == d {
			return true
		}
	}
	return false
}

// DownloadSource selects where vCenter downloads patches from: directly
// from the vendor online depots (INTERNET) or from a locally hosted UMDS
// depot (UMDS).
type DownloadSource struct {
	Type    string
	UMDSURL string
}

// NewDownloadSource validates and builds a download source. The URL is not
// format-checked; an empty URL is syntactically legal even for UMDS.
func NewDownloadSource(sourceType, umdsURL string) (DownloadSource, error) {
	if sourceType != SourceInternet && sourceType != SourceUMDS {
		return DownloadSource{}, fmt.Errorf("%w: %q (valid: %s, %s)",
			ErrInvalidSource, sourceType, SourceInternet, SourceUMDS)
	}
	return DownloadSource{Type: sourceType, UMDSURL: umdsURL}, nil
}

// DefaultSource returns the direct-internet download source.
func DefaultSource() DownloadSource {
	return DownloadSource{Type: SourceInternet}
}

// DownloadSettings is the full set of Lifecycle Manager download settings.
// It is always constructed in full before a write; partial updates are
// expressed by reading the current policy first and overriding fields.
type DownloadSettings struct {
	AutoCheckEnabled    bool
	AutoDownloadEnabled bool
	Schedule            DownloadSchedule
	Source              DownloadSource
	Proxy               ProxySettings
}

// DefaultDownloadSettings returns the settings written by enable-auto:
// checks and downloads on, default schedule, internet source, no proxy.
func DefaultDownloadSettings() DownloadSettings {
	return DownloadSettings{
		AutoCheckEnabled:    true,
		AutoDownloadEnabled: true,
		Schedule:            DefaultSchedule(),
		Source:              DefaultSource(),
		Proxy:               ProxySettings{Port: 80},
	}
}
