package converter

import (
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
)

func ToStakeResponse(res model.StakeResult) dto.StakeResponse {
	return dto.StakeResponse{
		OK:      res.OK,
		Message: res.Message,
		Stake:   res.Stake,
	}
}

func ToBetResponse(res model.BetResult) dto.BetResponse {
	out := dto.BetResponse{
		OK:      res.OK,
		Message: res.Message,
		Balance: res.Balance,
	}
	if res.OK {
		w := toWager(res.Wager)
		out.Wager = &w
	}
	return out
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	out := dto.SpinResponse{
		Wagers:        toSettledWagers(res.Wagers),
		TotalStaked:   res.TotalStaked,
		TotalWinnings: res.TotalWinnings,
		DidWin:        res.DidWin,
		Balance:       res.Balance,
		Message:       res.Message,
	}
	if res.Outcome != nil {
		o := string(*res.Outcome)
		out.Outcome = &o
		out.Color = string(res.Color)
		out.Parity = string(res.Parity)
	}
	return out
}

func ToStateResponse(state model.TableState) dto.StateResponse {
	wagers := make([]dto.Wager, len(state.Wagers))
	for i, w := range state.Wagers {
		wagers[i] = toWager(w)
	}
	out := dto.StateResponse{
		Balance: state.Balance,
		Stake:   state.Stake,
		Wagers:  wagers,
		Pending: len(state.Wagers) > 0,
	}
	if state.LastResult != nil {
		last := ToSpinResponse(*state.LastResult)
		out.LastResult = &last
	}
	return out
}

func ToHistoryResponse(rounds []model.Round) dto.HistoryResponse {
	out := dto.HistoryResponse{Rounds: make([]dto.RoundResponse, len(rounds))}
	for i, r := range rounds {
		out.Rounds[i] = dto.RoundResponse{
			ID:            r.ID.String(),
			Seq:           r.Seq,
			Outcome:       string(r.Outcome),
			Color:         string(r.Color),
			Wagers:        toSettledWagers(r.Wagers),
			TotalStaked:   r.TotalStaked,
			TotalWinnings: r.TotalWinnings,
			BalanceAfter:  r.BalanceAfter,
			CreatedAt:     r.CreatedAt,
		}
	}
	return out
}

func ToStatsResponse(stats model.TableStats) dto.StatsResponse {
	outcomeHits := make(map[string]int, len(stats.OutcomeHits))
	for o, n := range stats.OutcomeHits {
		outcomeHits[string(o)] = n
	}
	colorHits := make(map[string]int, len(stats.ColorHits))
	for c, n := range stats.ColorHits {
		colorHits[string(c)] = n
	}
	return dto.StatsResponse{
		TotalSpins:    stats.TotalSpins,
		TotalStaked:   stats.TotalStaked,
		TotalPaid:     stats.TotalPaid,
		CurrentRTP:    stats.CurrentRTP,
		WindowRTP:     stats.WindowRTP,
		WindowSize:    stats.WindowSize,
		BiggestPayout: stats.BiggestPayout,
		OutcomeHits:   outcomeHits,
		ColorHits:     colorHits,
	}
}

func ToSeatResponse(seat model.Seat) dto.SeatResponse {
	return dto.SeatResponse{
		SeatID:      seat.ID,
		AccessToken: seat.AccessToken,
		ExpiresAt:   seat.ExpiresAt,
	}
}

func toWager(w model.Wager) dto.Wager {
	return dto.Wager{
		Target: w.Target.String(),
		Kind:   w.Target.Kind.String(),
		Amount: w.Amount,
	}
}

func toSettledWagers(wagers []model.SettledWager) []dto.SettledWager {
	result := make([]dto.SettledWager, len(wagers))
	for i, w := range wagers {
		result[i] = dto.SettledWager{
			Target: w.Target.String(),
			Kind:   w.Target.Kind.String(),
			Amount: w.Amount,
			Payout: w.Payout,
		}
	}
	return result
}
