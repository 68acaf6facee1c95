package env

import (
	"fmt"
	"os"
	"strconv"

	"lucky_casino/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logFileEnvName  = "LOG_FILE"
	logDevEnvName   = "LOG_DEV"
)

type logConfig struct {
	level string
	file  string
	dev   bool
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{
		level: os.Getenv(logLevelEnvName),
		file:  os.Getenv(logFileEnvName),
	}
	if len(cfg.level) == 0 {
		cfg.level = "info"
	}

	if raw := os.Getenv(logDevEnvName); len(raw) != 0 {
		dev, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logDevEnvName, err)
		}
		cfg.dev = dev
	}

	return cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) File() string {
	return cfg.file
}

func (cfg *logConfig) Development() bool {
	return cfg.dev
}
