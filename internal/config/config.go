package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/koaskas/life-counter-bot/internal/domain"
)

// Config holds application configuration loaded from environment variables.
// It is immutable after Load.
type Config struct {
	BotToken      string `envconfig:"BOT_TOKEN" required:"true"`
	NotifyTime    string `envconfig:"NOTIFY_TIME" default:"10:00"` // HH:MM, daily delivery time
	TZOffsetHours int    `envconfig:"TZ_OFFSET_HOURS" default:"3"` // fixed notification zone
	AccessKey     string `envconfig:"ACCESS_KEY" default:""`       // non-empty enables the /start gate
	DBPath        string `envconfig:"DB_PATH" default:""`          // non-empty enables the SQLite registry
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`    // debug|info|warn|error
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`   // healthz
	SendRate      int    `envconfig:"SEND_RATE_PER_SEC" default:"25"`
}

// Load reads environment variables into Config and validates them.
// Any failure here is fatal to startup.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, _, err := domain.ParseNotifyTime(c.NotifyTime); err != nil {
		return fmt.Errorf("NOTIFY_TIME: %w", err)
	}
	if c.TZOffsetHours < -12 || c.TZOffsetHours > 14 {
		return fmt.Errorf("TZ_OFFSET_HOURS out of range: %d", c.TZOffsetHours)
	}
	if c.SendRate <= 0 {
		return fmt.Errorf("SEND_RATE_PER_SEC must be positive: %d", c.SendRate)
	}
	return nil
}

// Location returns the fixed notification zone, e.g. UTC+3.
func (c Config) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.TZOffsetHours), c.TZOffsetHours*60*60)
}

// NotifyHourMinute returns the validated daily delivery time.
func (c Config) NotifyHourMinute() (hour, minute int) {
	hour, minute, _ = domain.ParseNotifyTime(c.NotifyTime)
	return hour, minute
}
