package seat

import (
	"context"
	"testing"
	"time"

	"roulette_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwtConfig struct {
	secret string
	ttl    time.Duration
}

func (c jwtConfig) AccessTokenSecretKey() []byte       { return []byte(c.secret) }
func (c jwtConfig) AccessTokenDuration() time.Duration { return c.ttl }

func TestClaimAndVerify(t *testing.T) {
	s := NewSeatService(jwtConfig{secret: "s", ttl: time.Hour}, nil)
	ctx := context.Background()

	seat, err := s.Claim(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, seat.ID)
	assert.NotEmpty(t, seat.AccessToken)

	seatID, err := s.Verify(ctx, seat.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seat.ID, seatID)
}

func TestNewClaimReplacesSeat(t *testing.T) {
	s := NewSeatService(jwtConfig{secret: "s", ttl: time.Hour}, nil)
	ctx := context.Background()

	first, err := s.Claim(ctx)
	require.NoError(t, err)
	second, err := s.Claim(ctx)
	require.NoError(t, err)

	_, err = s.Verify(ctx, first.AccessToken)
	assert.ErrorIs(t, err, model.ErrSeatTaken)

	_, err = s.Verify(ctx, second.AccessToken)
	assert.NoError(t, err)
}

func TestVerifyBeforeClaim(t *testing.T) {
	s := NewSeatService(jwtConfig{secret: "s", ttl: time.Hour}, nil)
	other := NewSeatService(jwtConfig{secret: "s", ttl: time.Hour}, nil)
	ctx := context.Background()

	seat, err := other.Claim(ctx)
	require.NoError(t, err)

	_, err = s.Verify(ctx, seat.AccessToken)
	assert.ErrorIs(t, err, model.ErrSeatTaken)
}
