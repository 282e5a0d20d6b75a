package token

import (
	"errors"
	"fmt"
	"roulette_backend/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken подписывает токен места за столом (HS256)
func GenerateAccessToken(seatID string, secretKey []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := model.SeatClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        seatID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.SeatClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SeatClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.SeatClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.ID == "" {
		return nil, errors.New("token has no seat id")
	}

	return claims, nil
}
