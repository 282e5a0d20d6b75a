package roulette

import (
	"math/rand/v2"
	"roulette_backend/internal/model"
)

// Wheel единственный источник случайности стола
type Wheel interface {
	Draw() model.Outcome
}

// WheelFunc adapts a plain function to Wheel
type WheelFunc func() model.Outcome

func (f WheelFunc) Draw() model.Outcome {
	return f()
}

type randWheel struct {
	pockets []model.Outcome
}

// NewWheel колесо с равномерным выпадением одного из 38 номеров
func NewWheel() Wheel {
	return &randWheel{pockets: model.Outcomes()}
}

func (w *randWheel) Draw() model.Outcome {
	return w.pockets[rand.IntN(len(w.pockets))]
}
