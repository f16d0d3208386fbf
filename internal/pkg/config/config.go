package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, policy thresholds)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	FairPlay FairPlayConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// FairPlayConfig holds the booking policy thresholds. The weekly quota here is
// only the provisioning default; each unit carries its own quota.
type FairPlayConfig struct {
	MinDuration             time.Duration `envconfig:"FAIRPLAY_MIN_DURATION" default:"15m"`
	MaxDuration             time.Duration `envconfig:"FAIRPLAY_MAX_DURATION" default:"4h"`
	SlotIncrement           time.Duration `envconfig:"FAIRPLAY_SLOT_INCREMENT" default:"15m"`
	Cooldown                time.Duration `envconfig:"FAIRPLAY_COOLDOWN" default:"2h"`
	DefaultWeeklyQuotaHours int32         `envconfig:"FAIRPLAY_DEFAULT_WEEKLY_QUOTA_HOURS" default:"15"`
}

type WorkerConfig struct {
	// Cron spec for the weekly usage reset, standard 5-field syntax.
	QuotaResetSchedule string `envconfig:"WORKER_QUOTA_RESET_SCHEDULE" default:"0 0 * * MON"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level: "error",
		},
		FairPlay: FairPlayConfig{
			MinDuration:             15 * time.Minute,
			MaxDuration:             4 * time.Hour,
			SlotIncrement:           15 * time.Minute,
			Cooldown:                2 * time.Hour,
			DefaultWeeklyQuotaHours: 15,
		},
		Worker: WorkerConfig{
			QuotaResetSchedule: "0 0 * * MON",
		},
	}
}
