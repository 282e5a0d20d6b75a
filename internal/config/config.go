package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type TableConfig interface {
	// Chips номиналы фишек для слоя отображения
	Chips() []int
	StatsWindow() int
	HistoryLimit() int
	HistoryRetention() int
	CORSOrigins() []string
}

type HTTPConfig interface {
	Address() string
}

// PGConfig пустой DSN означает историю раундов в памяти
type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
}
