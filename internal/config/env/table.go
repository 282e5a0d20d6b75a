package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"roulette_backend/internal/config"
	servModel "roulette_backend/internal/service/roulette/model"

	"gopkg.in/yaml.v3"
)

const (
	defaultStatsWindow      = 500
	defaultHistoryLimit     = 50
	defaultHistoryRetention = 1000
)

type tableFile struct {
	Table struct {
		Chips            []int `yaml:"chips"`
		StatsWindow      int   `yaml:"stats_window"`
		HistoryLimit     int   `yaml:"history_limit"`
		HistoryRetention int   `yaml:"history_retention"`
	} `yaml:"table"`
	HTTP struct {
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"http"`
}

type tableConfig struct {
	chips            []int
	statsWindow      int
	historyLimit     int
	historyRetention int
	corsOrigins      []string
}

// NewTableConfigFromYAML читает config.yaml. Отсутствующий файл не ошибка:
// стол работает на значениях по умолчанию.
func NewTableConfigFromYAML(path string) (config.TableConfig, error) {
	var f tableFile

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg := &tableConfig{
		chips:            f.Table.Chips,
		statsWindow:      f.Table.StatsWindow,
		historyLimit:     f.Table.HistoryLimit,
		historyRetention: f.Table.HistoryRetention,
		corsOrigins:      f.HTTP.CORSOrigins,
	}

	// Set defaults
	if len(cfg.chips) == 0 {
		cfg.chips = append([]int(nil), servModel.DefaultChips...)
	}
	for _, c := range cfg.chips {
		if c <= 0 {
			return nil, fmt.Errorf("chip value must be positive, got %d", c)
		}
	}
	if cfg.statsWindow <= 0 {
		cfg.statsWindow = defaultStatsWindow
	}
	if cfg.historyLimit <= 0 {
		cfg.historyLimit = defaultHistoryLimit
	}
	if cfg.historyRetention <= 0 {
		cfg.historyRetention = defaultHistoryRetention
	}
	if len(cfg.corsOrigins) == 0 {
		cfg.corsOrigins = []string{"*"}
	}

	return cfg, nil
}

func (cfg *tableConfig) Chips() []int {
	return append([]int(nil), cfg.chips...)
}

func (cfg *tableConfig) StatsWindow() int {
	return cfg.statsWindow
}

func (cfg *tableConfig) HistoryLimit() int {
	return cfg.historyLimit
}

func (cfg *tableConfig) HistoryRetention() int {
	return cfg.historyRetention
}

func (cfg *tableConfig) CORSOrigins() []string {
	return append([]string(nil), cfg.corsOrigins...)
}
