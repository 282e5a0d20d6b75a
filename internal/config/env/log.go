package env

import (
	"os"
	"roulette_backend/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	defaultLogLevel = "info"
)

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = defaultLogLevel
	}
	return &logConfig{level: level}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
