package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func readYAML(t *testing.T, doc string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(doc)); err != nil {
		t.Fatalf("read yaml: %v", err)
	}
	return v
}

func TestParseConfig_AppliesDefaults(t *testing.T) {
	v := readYAML(t, `
server:
  Port: ":9000"
catalog:
  Source: file
  Path: ./video_info.json
`)
	cfg, err := ParseConfig(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != ":9000" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Catalog.BatchSize != 30 {
		t.Fatalf("batch size = %d, want 30", cfg.Catalog.BatchSize)
	}
	if cfg.Catalog.RecommendationCount != 12 {
		t.Fatalf("recommendation count = %d, want 12", cfg.Catalog.RecommendationCount)
	}
	if cfg.Client.ImageMarginPx != 500 || cfg.Client.ScrollMarginPx != 1000 {
		t.Fatalf("margins = %d/%d, want 500/1000", cfg.Client.ImageMarginPx, cfg.Client.ScrollMarginPx)
	}
	if cfg.Client.PollThresholdPx != 200 || cfg.Client.SearchDebounceMs != 200 {
		t.Fatalf("poll/debounce = %d/%d", cfg.Client.PollThresholdPx, cfg.Client.SearchDebounceMs)
	}
	if cfg.Catalog.DetailPath != "/player" || cfg.Catalog.Locale != "en" {
		t.Fatalf("detail path/locale = %q/%q", cfg.Catalog.DetailPath, cfg.Catalog.Locale)
	}
}

func TestParseConfig_RejectsUnknownSource(t *testing.T) {
	v := readYAML(t, `
server:
  Port: ":9000"
catalog:
  Source: ftp
`)
	if _, err := ParseConfig(v); err == nil {
		t.Fatalf("expected validation error for unknown source")
	}
}

func TestParseConfig_HTTPSourceNeedsURL(t *testing.T) {
	v := readYAML(t, `
server:
  Port: ":9000"
catalog:
  Source: http
`)
	if _, err := ParseConfig(v); err == nil {
		t.Fatalf("expected validation error when http source has no url")
	}

	v = readYAML(t, `
server:
  Port: ":9000"
catalog:
  Source: http
  URL: https://cdn.example.com/video_info.json
`)
	if _, err := ParseConfig(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := LoadConfig("definitely-missing-config")
	if err == nil || err.Error() != "config file not found" {
		t.Fatalf("err = %v, want config file not found", err)
	}
}

func TestGetConfigPath(t *testing.T) {
	if got := GetConfigPath("docker"); got != "./config/config-docker" {
		t.Fatalf("docker path = %q", got)
	}
	if got := GetConfigPath(""); got != "./config/config-local" {
		t.Fatalf("local path = %q", got)
	}
}
