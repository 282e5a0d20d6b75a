package stats_repo

import (
	"maps"
	"roulette_backend/internal/model"
	repoModel "roulette_backend/internal/repository/stats_repo/model"
	"sync"
)

// defaultWindowSize размер окна, если не задан в конфиге
const defaultWindowSize = 500

// Реализация репозитория для хранения статистики стола
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.TableState
}

// NewStatsRepository Конструктор для создания нового репозитория с начальным состоянием
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.TableState{
			OutcomeHits: make(map[model.Outcome]int),
			ColorHits:   make(map[model.Color]int),
			SpinWindow:  make([]repoModel.SpinResult, 0, windowSize),
			WindowSize:  windowSize,
		},
	}
}

// TableStats Получение текущей статистики стола.
// Возвращает копию, карты тоже копируются.
func (r *StatsRepo) TableStats() model.TableStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.TableStats{
		TotalSpins:    r.state.TotalSpins,
		TotalStaked:   r.state.TotalStaked,
		TotalPaid:     r.state.TotalPaid,
		CurrentRTP:    r.state.CurrentRTP,
		WindowRTP:     r.state.WindowRTP,
		WindowSize:    r.state.WindowSize,
		BiggestPayout: r.state.BiggestPayout,
		OutcomeHits:   maps.Clone(r.state.OutcomeHits),
		ColorHits:     maps.Clone(r.state.ColorHits),
	}
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(round *model.Round) {
	if round == nil {
		return
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalStaked += round.TotalStaked
	r.state.TotalPaid += round.TotalWinnings
	r.state.CurrentRTP = rtp(r.state.TotalStaked, r.state.TotalPaid)

	r.state.OutcomeHits[round.Outcome]++
	r.state.ColorHits[round.Color]++
	if round.TotalWinnings > r.state.BiggestPayout {
		r.state.BiggestPayout = round.TotalWinnings
	}

	// Добавляем спин в окно
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Staked: round.TotalStaked,
		Paid:   round.TotalWinnings,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowStaked, windowPaid int
	for _, spin := range r.state.SpinWindow {
		windowStaked += spin.Staked
		windowPaid += spin.Paid
	}
	r.state.WindowRTP = rtp(windowStaked, windowPaid)
}

func rtp(staked, paid int) float64 {
	if staked <= 0 {
		return 0
	}
	return float64(paid) / float64(staked) * 100
}
