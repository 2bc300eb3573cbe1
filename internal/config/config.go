package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultAPIBaseURL = "https://pokeapi.co/api/v2"

// Config holds runtime settings for the dexbook TUI.
type Config struct {
	APIBaseURL string
	Languages  []string
	PanelMode  string
	OpenMs     int
	CloseMs    int
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL: os.Getenv("DEXBOOK_API_BASE_URL"),
		PanelMode:  os.Getenv("DEXBOOK_PANEL_MODE"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.PanelMode == "" {
		cfg.PanelMode = "reversible"
	}

	langs := os.Getenv("DEXBOOK_LANGS")
	if langs == "" {
		langs = "en"
	}
	for _, lang := range strings.Split(langs, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			cfg.Languages = append(cfg.Languages, lang)
		}
	}

	var err error
	if cfg.OpenMs, err = msFromEnv("DEXBOOK_OPEN_MS", 900); err != nil {
		return Config{}, err
	}
	if cfg.CloseMs, err = msFromEnv("DEXBOOK_CLOSE_MS", 700); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func msFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer millisecond count: %s", key, raw)
	}
	return ms, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if len(c.Languages) == 0 {
		return errors.New("at least one language is required")
	}
	if c.PanelMode != "reversible" && c.PanelMode != "oneshot" {
		return fmt.Errorf("PanelMode must be reversible or oneshot: %s", c.PanelMode)
	}
	if c.OpenMs <= 0 || c.CloseMs <= 0 {
		return fmt.Errorf("transition durations must be positive: open %dms close %dms", c.OpenMs, c.CloseMs)
	}
	return nil
}
