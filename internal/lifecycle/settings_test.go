package lifecycle

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// =============================================================================
// Property-Based Tests
// =============================================================================

func genValidDay() gopter.Gen {
	return gen.OneConstOf(
		DayEveryday, DayMonday, DayTuesday, DayWednesday,
		DayThursday, DayFriday, DaySaturday, DaySunday,
	)
}

// TestScheduleRoundTrip checks that every in-range (day, hour, minute)
// combination constructs successfully and serializes all four fields
// unchanged.
func TestScheduleRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("valid schedules construct and round-trip through Wire", prop.ForAll(
		func(day string, hour, minute int, enabled bool) bool {
			s, err := NewDownloadSchedule(enabled, day, hour, minute)
			if err != nil {
				t.Logf("unexpected error for (%s, %d, %d): %v", day, hour, minute, err)
				return false
			}

			wire := s.Wire()
			return wire["enabled"] == enabled &&
				wire["day"] == day &&
				wire["hour"] == hour &&
				wire["minute"] == minute
		},
		genValidDay(),
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestScheduleValidationFailures checks that out-of-range values are
// rejected at construction, naming the offending field.
func TestScheduleValidationFailures(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("out-of-range hours are rejected", prop.ForAll(
		func(hour, minute int) bool {
			_, err := NewDownloadSchedule(true, DayEveryday, hour, minute)
			return errors.Is(err, ErrInvalidHour)
		},
		gen.OneGenOf(gen.IntRange(-100, -1), gen.IntRange(24, 100)),
		gen.IntRange(0, 59),
	))

	properties.Property("out-of-range minutes are rejected", prop.ForAll(
		func(hour, minute int) bool {
			_, err := NewDownloadSchedule(true, DayEveryday, hour, minute)
			return errors.Is(err, ErrInvalidMinute)
		},
		gen.IntRange(0, 23),
		gen.OneGenOf(gen.IntRange(-100, -1), gen.IntRange(60, 100)),
	))

	properties.Property("unknown days are rejected", prop.ForAll(
		func(day string) bool {
			_, err := NewDownloadSchedule(true, day, 2, 0)
			return errors.Is(err, ErrInvalidDay)
		},
		gen.AlphaString().SuchThat(func(s string) bool { return !validDay(s) }),
	))

	properties.TestingRun(t)
}

// TestSourceValidation checks that only INTERNET and UMDS are accepted.
func TestSourceValidation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("unknown source types are rejected", prop.ForAll(
		func(sourceType string) bool {
			_, err := NewDownloadSource(sourceType, "")
			return errors.Is(err, ErrInvalidSource)
		},
		gen.AlphaString().SuchThat(func(s string) bool {
			return s != SourceInternet && s != SourceUMDS
		}),
	))

	properties.TestingRun(t)

	for _, valid := range []string{SourceInternet, SourceUMDS} {
		if _, err := NewDownloadSource(valid, ""); err != nil {
			t.Errorf("NewDownloadSource(%q) failed: %v", valid, err)
		}
	}

	// An empty URL is syntactically legal even for UMDS
	if _, err := NewDownloadSource(SourceUMDS, ""); err != nil {
		t.Errorf("UMDS with empty URL should construct: %v", err)
	}
}

// =============================================================================
// Example Tests
// =============================================================================

func TestProxyWire(t *testing.T) {
	tests := []struct {
		name  string
		proxy ProxySettings
		want  map[string]any
	}{
		{
			name:  "disabled proxy serializes enabled flag only",
			proxy: ProxySettings{Enabled: false, Server: "p", Port: 8080, Username: "u", Password: "pw"},
			want:  map[string]any{"enabled": false},
		},
		{
			name:  "empty username suppresses credentials",
			proxy: ProxySettings{Enabled: true, Server: "p", Port: 8080},
			want:  map[string]any{"enabled": true, "server": "p", "port": 8080},
		},
		{
			name:  "credentials included when username set",
			proxy: ProxySettings{Enabled: true, Server: "p", Port: 8080, Username: "u", Password: "pw"},
			want: map[string]any{
				"enabled": true, "server": "p", "port": 8080,
				"username": "u", "password": "pw",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.proxy.Wire()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wire() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultDownloadSettings(t *testing.T) {
	settings := DefaultDownloadSettings()

	if !settings.AutoCheckEnabled || !settings.AutoDownloadEnabled {
		t.Error("defaults should enable both checks and downloads")
	}
	if settings.Schedule != (DownloadSchedule{Enabled: true, Day: DayEveryday, Hour: 2, Minute: 0}) {
		t.Errorf("unexpected default schedule: %+v", settings.Schedule)
	}
	if settings.Source.Type != SourceInternet {
		t.Errorf("default source = %q, want %q", settings.Source.Type, SourceInternet)
	}
	if settings.Proxy.Enabled {
		t.Error("default proxy should be disabled")
	}
}

func TestValidationErrorNamesValue(t *testing.T) {
	_, err := NewDownloadSchedule(true, "FUNDAY", 2, 0)
	if err == nil {
		t.Fatal("expected error for invalid day")
	}
	for _, want := range []string{"FUNDAY", DayEveryday, DaySunday} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
