package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Calendar CalendarConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type UpstreamConfig struct {
	BaseURL            string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout            time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	MutationTimeout    time.Duration `envconfig:"UPSTREAM_MUTATION_TIMEOUT" default:"15s"`
	BreakerMaxFailures uint32        `envconfig:"UPSTREAM_BREAKER_MAX_FAILURES" default:"3"`
	BreakerOpenTimeout time.Duration `envconfig:"UPSTREAM_BREAKER_OPEN_TIMEOUT" default:"10s"`
}

type CalendarConfig struct {
	HorizonMonths     int           `envconfig:"CALENDAR_HORIZON_MONTHS" default:"12"`
	LabelOffsetMonths int           `envconfig:"CALENDAR_LABEL_OFFSET_MONTHS" default:"1"`
	CacheTTL          time.Duration `envconfig:"CALENDAR_CACHE_TTL" default:"30s"`
	// IANA zone used to decide what "today" is for the host
	TimeZone string `envconfig:"CALENDAR_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotency-Key"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Location falls back to UTC when the configured zone is unknown.
func (c CalendarConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Calendar.TimeZone); err != nil {
		return Config{}, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", cfg.Calendar.TimeZone, err)
	}
	return cfg, nil
}

// LoadCalendarConfig reads only the calendar group, for tools that never reach the upstream.
func LoadCalendarConfig() (CalendarConfig, error) {
	var cfg CalendarConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return CalendarConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
		return CalendarConfig{}, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL:            "http://127.0.0.1:18080",
			Timeout:            2 * time.Second,
			MutationTimeout:    2 * time.Second,
			BreakerMaxFailures: 3,
			BreakerOpenTimeout: time.Second,
		},
		Calendar: CalendarConfig{
			HorizonMonths:     12,
			LabelOffsetMonths: 1,
			CacheTTL:          time.Minute,
			TimeZone:          "UTC",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Idempotency-Key"},
			ExposeHeaders: []string{"Idempotency-Key"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
