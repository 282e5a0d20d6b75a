package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Seat the single playing position at the table. Only the holder of the
// most recently issued seat token may change table state.
type Seat struct {
	ID          string
	AccessToken string
	ExpiresAt   time.Time
}

type SeatClaims struct {
	jwt.RegisteredClaims
}
