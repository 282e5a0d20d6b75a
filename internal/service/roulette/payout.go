package roulette

import (
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
)

// Payout сколько вернёт ставка при выпавшем номере (0 при проигрыше)
func Payout(w model.Wager, outcome model.Outcome) int {
	t := w.Target
	switch t.Kind {
	case model.TargetNumber:
		if t.Number == outcome {
			return w.Amount * servModel.NumberPayout
		}
	case model.TargetColor:
		if t.Color == outcome.Color() {
			return w.Amount * servModel.EvenMoneyPayout
		}
	case model.TargetParity:
		// у 0 и 00 чётности нет, ParityNone не совпадает ни с ODD ни с EVEN
		p := outcome.Parity()
		if p != model.ParityNone && t.Parity == p {
			return w.Amount * servModel.EvenMoneyPayout
		}
	}
	return 0
}

// Settle считает каждую ставку ровно один раз, порядок сохраняется
func Settle(wagers []model.Wager, outcome model.Outcome) (settled []model.SettledWager, staked, winnings int) {
	settled = make([]model.SettledWager, len(wagers))
	for i, w := range wagers {
		p := Payout(w, outcome)
		settled[i] = model.SettledWager{Wager: w, Payout: p}
		staked += w.Amount
		winnings += p
	}
	return settled, staked, winnings
}
