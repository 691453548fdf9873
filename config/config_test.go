package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("unexpected default base url: %q", cfg.API.BaseURL)
	}
	if cfg.Notifier.PollInterval.Minutes() != 5 {
		t.Errorf("unexpected default poll interval: %s", cfg.Notifier.PollInterval)
	}
	if cfg.Storage.Dir == "" {
		t.Error("storage dir must always resolve")
	}
	if cfg.Logger.File == "" {
		t.Error("logger file must default under the storage dir")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TASKDECK_API_URL", "https://tasks.example.com/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://tasks.example.com/api" {
		t.Errorf("env override not applied or trailing slash kept: %q", cfg.API.BaseURL)
	}
}
