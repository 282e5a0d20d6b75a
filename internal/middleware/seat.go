package middleware

import (
	"context"
	"net/http"
	"roulette_backend/internal/service"
	"strings"
)

type ctxKey struct{}

// Seat пропускает запрос только с действующим токеном места
// (Authorization: Bearer <token>) и кладёт seat id в контекст.
func Seat(seats service.SeatService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			accessToken, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || accessToken == "" {
				http.Error(w, "missing seat token", http.StatusUnauthorized)
				return
			}

			seatID, err := seats.Verify(r.Context(), accessToken)
			if err != nil {
				http.Error(w, "invalid seat token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, seatID)))
		})
	}
}

func SeatIDFromContext(ctx context.Context) (string, bool) {
	seatID, ok := ctx.Value(ctxKey{}).(string)
	return seatID, ok
}
