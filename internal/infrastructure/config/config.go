package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogFile   string `env:"LOG_FILE"`

	// StoreDriver selects the blob backend: memory, redis or mongo.
	StoreDriver string `env:"STORE_DRIVER, default=memory"`
	Mongo       MongoConfig
	Redis       RedisConfig

	Export ExportConfig

	// WarmOnStart loads every category before the server accepts traffic.
	WarmOnStart bool `env:"WARM_ON_START, default=true"`

	// Seed fixes the mock dataset; 0 derives it from the start time.
	Seed     uint64 `env:"SEED,     default=0"`
	Timezone string `env:"TIMEZONE, default=UTC"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=report_dashboard"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR,       default=localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB,         default=0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX"`
}

type ExportConfig struct {
	BaseURL         string        `env:"EXPORT_BASE_URL,  default=https://exports.worklog.local/reports"`
	ExportLatency   time.Duration `env:"EXPORT_LATENCY,   default=1500ms"`
	ScheduleLatency time.Duration `env:"SCHEDULE_LATENCY, default=1s"`
}

// IsDevelopment reports whether ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Location resolves TIMEZONE.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads a .env file when present and then the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return fromLookuper(ctx, envconfig.OsLookuper())
}

func fromLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	switch cfg.StoreDriver {
	case DriverMemory, DriverRedis, DriverMongo:
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
