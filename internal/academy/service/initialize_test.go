package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "academy/pkg/domain-errors"
)

func (s *EngineSuite) TestInitialize() {
	ctx := context.Background()

	s.T().Run("creates the singleton config", func(t *testing.T) {
		cfg, err := s.service.Initialize(ctx, s.authority)
		require.NoError(t, err)
		assert.Equal(t, s.authority, cfg.Authority)
		assert.Equal(t, s.authority, cfg.BackendSigner)
		assert.Equal(t, s.xp.Mint(), cfg.XPMint)

		stored, err := s.service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, cfg, stored)
	})

	s.T().Run("second initialize is a conflict", func(t *testing.T) {
		_, err := s.service.Initialize(ctx, s.backend)
		require.ErrorIs(t, err, ErrConfigExists)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

		// The losing initialize must not clobber the config.
		cfg, err := s.service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, s.authority, cfg.Authority)
	})
}

func (s *EngineSuite) TestGetConfigBeforeInitialize() {
	_, err := s.service.GetConfig(context.Background())
	require.ErrorIs(s.T(), err, ErrConfigMissing)
}
