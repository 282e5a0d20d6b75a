package seat

import (
	"context"
	"roulette_backend/internal/config"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/token"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	jwtConfig config.JWTConfig
	log       *zap.Logger

	mtx     sync.RWMutex
	current string
}

// NewSeatService место за столом одно; каждый Claim пересаживает игрока,
// старые токены после этого не проходят Verify.
func NewSeatService(jwtConfig config.JWTConfig, log *zap.Logger) service.SeatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{
		jwtConfig: jwtConfig,
		log:       log,
	}
}

func (s *serv) Claim(_ context.Context) (*model.Seat, error) {
	seatID := uuid.NewString()

	accessToken, expiresAt, err := token.GenerateAccessToken(
		seatID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	s.mtx.Lock()
	s.current = seatID
	s.mtx.Unlock()

	s.log.Info("seat claimed", zap.String("seat_id", seatID), zap.Time("expires_at", expiresAt))

	return &model.Seat{
		ID:          seatID,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *serv) Verify(_ context.Context, accessToken string) (string, error) {
	claims, err := token.VerifyToken(accessToken, s.jwtConfig.AccessTokenSecretKey())
	if err != nil {
		return "", err
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if claims.ID != s.current {
		return "", model.ErrSeatTaken
	}
	return claims.ID, nil
}
