package roulette

import (
	"errors"
	"net/http"
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"
	"strconv"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv         service.RouletteService
	Chips        []int
	HistoryLimit int
	Log          *zap.Logger
}

type Handler struct {
	serv         service.RouletteService
	chips        []int
	historyLimit int
	log          *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		serv:         deps.Serv,
		chips:        deps.Chips,
		historyLimit: deps.HistoryLimit,
		log:          log,
	}
}

// State текущее состояние стола: баланс, ставка, активные ставки, последний результат
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*h.serv.State(r.Context())))
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: h.serv.Balance(r.Context())})
}

func (h *Handler) Chips(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.ChipsResponse{Chips: h.chips})
}

func (h *Handler) SetStake(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StakeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.SetStake(r.Context(), payload.Amount)
	if err != nil {
		h.writeFailure(w, err, result.Message)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStakeResponse(*result))
}

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.PlaceBetLabel(r.Context(), payload.Target)
	if err != nil {
		h.writeFailure(w, err, result.Message)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToBetResponse(*result))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		h.writeFailure(w, err, result.Message)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.serv.Reset(r.Context())
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*h.serv.State(r.Context())))
}

// History последние раунды; ?limit=N, не больше лимита из конфига
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		if limit <= 0 || n < limit {
			limit = n
		}
	}

	rounds, err := h.serv.History(r.Context(), limit)
	if err != nil {
		h.log.Error("failed to list rounds", zap.Error(err))
		http.Error(w, "failed to list rounds", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(rounds))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

// writeFailure отказ стола: состояние не менялось, клиент получает сообщение для показа
func (h *Handler) writeFailure(w http.ResponseWriter, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("table operation failed", zap.Error(err))
	}
	resp.WriteJSONResponse(w, status, dto.ErrorResponse{
		OK:      false,
		Error:   err.Error(),
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidStake), errors.Is(err, model.ErrUnrecognizedTarget):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientBalance), errors.Is(err, model.ErrNoActiveBets):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
