package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIURL       = "http://localhost:5500/api"
	defaultTimeout      = "10s"
	defaultPollInterval = "3s"
	defaultStorePath    = "busline.db"
	defaultPerPage      = "10"
)

type Config struct {
	AppEnv       string
	APIBaseURL   string
	HTTPTimeout  time.Duration
	PollInterval time.Duration
	StorePath    string
	PerPage      int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.APIBaseURL = strings.TrimRight(getEnv("BUSLINE_API_URL", defaultAPIURL), "/")
	cfg.StorePath = getEnv("BUSLINE_STORE_PATH", defaultStorePath)

	var err error
	cfg.HTTPTimeout, err = parseDurationEnv("BUSLINE_HTTP_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval, err = parseDurationEnv("BUSLINE_POLL_INTERVAL", defaultPollInterval)
	if err != nil {
		return nil, err
	}

	perPage := getEnv("BUSLINE_PER_PAGE", defaultPerPage)
	if _, err := fmt.Sscanf(perPage, "%d", &cfg.PerPage); err != nil || cfg.PerPage < 1 {
		return nil, fmt.Errorf("invalid BUSLINE_PER_PAGE %q", perPage)
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}
