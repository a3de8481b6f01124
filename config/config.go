package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// AccountSeed describes an account created at startup.
type AccountSeed struct {
	Kind         string `mapstructure:"kind"`
	Holder       string `mapstructure:"holder"`
	Balance      string `mapstructure:"balance"`
	LockInMonths int    `mapstructure:"lock_in_months"`
}

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Notify struct {
		Parallel    bool     `mapstructure:"parallel"`
		MaxParallel int      `mapstructure:"max_parallel"`
		Channels    []string `mapstructure:"channels"`
	} `mapstructure:"notify"`
	Accounts []AccountSeed `mapstructure:"accounts"`
}

var AppConfig Config

// ErrInvalidConfig marks settings that decode fine but cannot be used together.
var ErrInvalidConfig = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("notify.parallel", false)
	v.SetDefault("notify.max_parallel", 4)
	v.SetDefault("notify.channels", []string{"email", "sms", "push", "whatsapp"})
}

// Load reads config.yml from path, overlaid with environment variables such as
// SERVER_PORT or LOG_LEVEL. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.Notify.Parallel && cfg.Notify.MaxParallel <= 0 {
		return nil, fmt.Errorf("%w: notify.max_parallel must be positive when notify.parallel is set, got %d", ErrInvalidConfig, cfg.Notify.MaxParallel)
	}
	return &cfg, nil
}

// LoadConfig loads the configuration into AppConfig and exits on failure.
func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error loading config, %s", err)
	}
	AppConfig = *cfg
}
