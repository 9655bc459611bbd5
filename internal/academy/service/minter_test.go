package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
)

func (s *EngineSuite) TestRegisterMinter() {
	ctx := context.Background()
	s.bootstrap()

	minter := testIdentity(0x30)
	params := models.RegisterMinterParams{
		Minter:       minter,
		Label:        "hackathon-bot",
		MaxXPPerCall: 1000,
	}

	s.T().Run("non-authority signer rejected", func(t *testing.T) {
		_, err := s.service.RegisterMinter(ctx, s.backend, params)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("registers active role", func(t *testing.T) {
		role, err := s.service.RegisterMinter(ctx, s.authority, params)
		require.NoError(t, err)
		assert.True(t, role.IsActive)
		assert.Equal(t, uint64(1000), role.MaxXPPerCall)
		assert.Equal(t, "hackathon-bot", role.Label)
	})

	s.T().Run("duplicate registration is a conflict", func(t *testing.T) {
		_, err := s.service.RegisterMinter(ctx, s.authority, params)
		require.ErrorIs(t, err, ErrMinterExists)
	})

	s.T().Run("validation", func(t *testing.T) {
		bad := params
		bad.MaxXPPerCall = 0
		bad.Minter = testIdentity(0x31)
		_, err := s.service.RegisterMinter(ctx, s.authority, bad)
		require.Error(t, err)
	})
}

func (s *EngineSuite) TestRewardXP() {
	ctx := context.Background()
	s.bootstrap()

	minter := testIdentity(0x30)
	recipient := testIdentity(0x31)
	_, err := s.service.RegisterMinter(ctx, s.authority, models.RegisterMinterParams{
		Minter:       minter,
		Label:        "hackathon-bot",
		MaxXPPerCall: 1000,
	})
	require.NoError(s.T(), err)

	s.T().Run("mints within the cap", func(t *testing.T) {
		err := s.service.RewardXP(ctx, minter, recipient, 1000)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), s.xp.Balance(recipient))
	})

	s.T().Run("amount above cap rejected", func(t *testing.T) {
		err := s.service.RewardXP(ctx, minter, recipient, 1001)
		require.ErrorIs(t, err, ErrMinterCapExceeded)
		assert.Equal(t, uint64(1000), s.xp.Balance(recipient))
	})

	s.T().Run("unregistered minter rejected", func(t *testing.T) {
		err := s.service.RewardXP(ctx, testIdentity(0x32), recipient, 10)
		require.ErrorIs(t, err, ErrMinterNotFound)
	})

	s.T().Run("revoked minter rejected", func(t *testing.T) {
		require.NoError(t, s.service.RevokeMinter(ctx, s.authority, minter))

		err := s.service.RewardXP(ctx, minter, recipient, 10)
		require.ErrorIs(t, err, ErrMinterNotActive)
		assert.Equal(t, uint64(1000), s.xp.Balance(recipient))
	})

	s.T().Run("revoke requires the authority", func(t *testing.T) {
		err := s.service.RevokeMinter(ctx, s.backend, minter)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}
