package app

import (
	rouletteAPI "roulette_backend/internal/api/roulette"
	seatAPI "roulette_backend/internal/api/seat"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterDeps struct {
	RouletteHandler *rouletteAPI.Handler
	SeatHandler     *seatAPI.Handler
	Seats           service.SeatService
	CORSOrigins     []string
	Log             *zap.Logger
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if deps.Log != nil {
		r.Use(middleware.AccessLog(deps.Log))
	}

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	h := deps.RouletteHandler
	r.Route("/table", func(rr chi.Router) {
		rr.Post("/seat", deps.SeatHandler.Claim)

		// Read endpoints
		rr.Get("/", h.State)
		rr.Get("/balance", h.Balance)
		rr.Get("/chips", h.Chips)
		rr.Get("/history", h.History)
		rr.Get("/stats", h.Stats)

		// Table endpoints, only for the seat holder
		rr.Group(func(gr chi.Router) {
			gr.Use(middleware.Seat(deps.Seats))
			gr.Post("/stake", h.SetStake)
			gr.Post("/bets", h.PlaceBet)
			gr.Post("/spin", h.Spin)
			gr.Post("/reset", h.Reset)
		})
	})

	return r
}
