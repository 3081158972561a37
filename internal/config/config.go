package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultBucket = "gentle_keeper_data_v1"

type StorageConfig struct {
	Driver string `yaml:"driver"` // file, sqlite, postgres, redis, memory
	Path   string `yaml:"path"`   // JSON file or SQLite database
	Bucket string `yaml:"bucket"` // Key the whole store is kept under
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	DBName     string `yaml:"dbname"`
	SSLMode    string `yaml:"sslmode"`
	MaxRetries int    `yaml:"max_retries"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type HabitsConfig struct {
	WaterSipML       int    `yaml:"water_sip_ml"`        // Volume of one water click
	DailyWaterGoalML int    `yaml:"daily_water_goal_ml"` // Full progress bar
	TargetSleepStart string `yaml:"target_sleep_start"`  // Bedtime window start, HH:MM
	TargetSleepEnd   string `yaml:"target_sleep_end"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Habits   HabitsConfig   `yaml:"habits"`
	Log      LogConfig      `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "file",
			Path:   "data/keeper.json",
			Bucket: DefaultBucket,
		},
		Database: DatabaseConfig{
			Host:       "localhost",
			Port:       5432,
			User:       "keeper",
			DBName:     "keeper",
			SSLMode:    "disable",
			MaxRetries: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Habits: HabitsConfig{
			WaterSipML:       350,
			DailyWaterGoalML: 2000,
			TargetSleepStart: "22:30",
			TargetSleepEnd:   "23:30",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads filename over the defaults. A missing file is not an error;
// os.ErrNotExist is still reported alongside the default config so the
// caller can log it.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnvOverrides()
			if verr := cfg.Validate(); verr != nil {
				return nil, verr
			}
			return cfg, err
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("KEEPER_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("KEEPER_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("KEEPER_DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("KEEPER_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Driver) {
	case "file", "sqlite", "postgres", "redis", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = DefaultBucket
	}
	if c.Habits.WaterSipML <= 0 {
		return fmt.Errorf("habits.water_sip_ml must be positive, got %d", c.Habits.WaterSipML)
	}
	if c.Habits.TargetSleepStart > c.Habits.TargetSleepEnd {
		return fmt.Errorf("habits.target_sleep_start %s is after target_sleep_end %s",
			c.Habits.TargetSleepStart, c.Habits.TargetSleepEnd)
	}
	return nil
}

// ConnString is the lib/pq keyword/value connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}
