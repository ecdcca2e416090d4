package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/store"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"

	envPrefix        = "DAYBOARD"
	defaultConfigDir = ".dayboard"
)

type Config struct {
	Env               string      `mapstructure:"env" yaml:"env"`
	Store             StoreConfig `mapstructure:"store" yaml:"store"`
	Log               LogConfig   `mapstructure:"log" yaml:"log"`
	Sign              string      `mapstructure:"sign" yaml:"sign"`
	Watch             bool        `mapstructure:"watch" yaml:"watch"`
	ReminderLeadHours int         `mapstructure:"reminder_lead_hours" yaml:"reminder_lead_hours"`
	SchedulerBuffer   int         `mapstructure:"scheduler_buffer" yaml:"scheduler_buffer"`
}

type StoreConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Format string `mapstructure:"format" yaml:"format"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Dir is where dayboard keeps its files unless configured otherwise.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultConfigDir
	}
	return filepath.Join(home, defaultConfigDir)
}

func Default() Config {
	dir := Dir()
	return Config{
		Env: EnvProd,
		Store: StoreConfig{
			Path:   filepath.Join(dir, "dayboard.json"),
			Format: string(store.FormatJSON),
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "dayboard.log"),
		},
		ReminderLeadHours: 24,
		SchedulerBuffer:   64,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("config: store.path is required")
	}
	if _, err := store.ParseFormat(c.Store.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Sign != "" {
		if _, err := model.ParseSign(c.Sign); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.ReminderLeadHours < 0 {
		return errors.New("config: reminder_lead_hours must not be negative")
	}
	if c.SchedulerBuffer <= 0 {
		return errors.New("config: scheduler_buffer must be positive")
	}
	return nil
}

func (c Config) StoreFormat() store.Format {
	f, err := store.ParseFormat(c.Store.Format)
	if err != nil {
		return store.FormatJSON
	}
	return f
}

type LoadOptions struct {
	// File is an explicit config path. When empty the default locations
	// are searched and a missing file is not an error.
	File string
	// EnvFile is loaded into the process environment when it exists.
	EnvFile string
}

// Load layers defaults, the config file, .env and DAYBOARD_* variables, in
// increasing priority.
func Load(opts LoadOptions) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v, Default())

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write saves cfg as YAML, creating parent directories. An existing file is
// left alone unless overwrite is set.
func Write(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	payload, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("env", cfg.Env)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.format", cfg.Store.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("sign", cfg.Sign)
	v.SetDefault("watch", cfg.Watch)
	v.SetDefault("reminder_lead_hours", cfg.ReminderLeadHours)
	v.SetDefault("scheduler_buffer", cfg.SchedulerBuffer)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
