package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	Environment EnvironmentConfig
	API         APIConfig
	Logger      LoggerConfig
	Notifier    NotifierConfig
	Storage     StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

// APIConfig points the client at the task backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string
}

// NotifierConfig controls the due-task notification poller.
type NotifierConfig struct {
	PollInterval time.Duration
}

// StorageConfig locates the durable client state (session token,
// cached profile, theme preference).
type StorageConfig struct {
	Dir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskdeck/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskdeck/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.API.BaseURL = viper.GetString("api.base_url")
	cfg.API.Timeout = viper.GetDuration("api.timeout")
	if apiURL := viper.GetString("taskdeck_api_url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.File = viper.GetString("logger.file")

	cfg.Notifier.PollInterval = viper.GetDuration("notifier.poll_interval")

	cfg.Storage.Dir = viper.GetString("storage.dir")
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaultStorageDir()
	}
	if cfg.Logger.File == "" {
		cfg.Logger.File = filepath.Join(cfg.Storage.Dir, "taskdeck.log")
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("api.base_url", "http://localhost:5000/api")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)
	viper.SetDefault("notifier.poll_interval", "5m")
}

// defaultStorageDir resolves the per-user state directory.
func defaultStorageDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "taskdeck")
	}
	return ".taskdeck"
}
