package seat

import (
	"net/http"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SeatService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SeatService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// Claim садит игрока за стол и возвращает access_token места
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	seat, err := h.serv.Claim(r.Context())
	if err != nil {
		h.log.Error("claim seat error", zap.Error(err))
		http.Error(w, "claim seat failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSeatResponse(*seat))
}
