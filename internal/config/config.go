package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/klyszcz/salon-dayview/internal/domain"
)

// Config is the service configuration loaded from config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	SalonAPI SalonAPIConfig `toml:"salon_api"`
	DayView  DayViewConfig  `toml:"dayview"`
}

// ServerConfig configures the HTTP server (timeouts in seconds)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig configures the logger
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonAPIConfig configures the upstream salon booking API client
type SalonAPIConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"` // seconds
	PageSize int    `toml:"page_size"`
}

// DayViewConfig configures the visible day grid window (HH:MM)
type DayViewConfig struct {
	GridStart string `toml:"grid_start"`
	GridEnd   string `toml:"grid_end"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-dayview",
		},
		SalonAPI: SalonAPIConfig{
			Timeout:  10,
			PageSize: 100,
		},
		DayView: DayViewConfig{
			GridStart: "08:00",
			GridEnd:   "20:00",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.SalonAPI.URL == "" {
		return fmt.Errorf("config: salon_api.url is required")
	}
	if c.SalonAPI.PageSize <= 0 {
		return fmt.Errorf("config: salon_api.page_size must be positive")
	}

	start, err := c.DayView.GridStartMinute()
	if err != nil {
		return err
	}
	end, err := c.DayView.GridEndMinute()
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("config: dayview.grid_end %q must be after grid_start %q",
			c.DayView.GridEnd, c.DayView.GridStart)
	}

	return nil
}

func parseGridTime(field, value string) (int, error) {
	t, err := time.Parse(domain.TimeFormat, value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid dayview.%s %q: %w", field, value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// GridStartMinute returns the grid window start as minutes since midnight
func (d *DayViewConfig) GridStartMinute() (int, error) {
	return parseGridTime("grid_start", d.GridStart)
}

// GridEndMinute returns the grid window end as minutes since midnight
func (d *DayViewConfig) GridEndMinute() (int, error) {
	return parseGridTime("grid_end", d.GridEnd)
}
