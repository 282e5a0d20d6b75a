package model

import "roulette_backend/internal/model"

// Состояние стола для статистики
type TableState struct {
	TotalSpins  int // Сколько всего спинов сделано
	TotalStaked int // Сумма всех ставок
	TotalPaid   int // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPaid/TotalStaked)*100

	BiggestPayout int // Самая крупная выплата за один спин

	OutcomeHits map[model.Outcome]int // Сколько раз выпадал каждый номер
	ColorHits   map[model.Color]int   // Сколько раз выпадал каждый цвет

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна для анализа RTP
}

// Результат спина для окна
type SpinResult struct {
	Staked int
	Paid   int
}
