package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
)

func (s *EngineSuite) TestUpdateConfig() {
	ctx := context.Background()

	s.T().Run("missing config", func(t *testing.T) {
		err := s.service.UpdateConfig(ctx, s.authority, models.UpdateConfigParams{
			BackendSigner: models.SetIdentity(s.backend),
		})
		require.ErrorIs(t, err, ErrConfigMissing)
	})

	_, err := s.service.Initialize(ctx, s.authority)
	require.NoError(s.T(), err)

	s.T().Run("non-authority signer rejected", func(t *testing.T) {
		err := s.service.UpdateConfig(ctx, s.backend, models.UpdateConfigParams{
			BackendSigner: models.SetIdentity(s.backend),
		})
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("delegates backend signer", func(t *testing.T) {
		err := s.service.UpdateConfig(ctx, s.authority, models.UpdateConfigParams{
			BackendSigner: models.SetIdentity(s.backend),
		})
		require.NoError(t, err)

		cfg, err := s.service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, s.backend, cfg.BackendSigner)
		assert.Equal(t, s.authority, cfg.Authority)
	})

	s.T().Run("absent field is a no-op", func(t *testing.T) {
		err := s.service.UpdateConfig(ctx, s.authority, models.UpdateConfigParams{})
		require.NoError(t, err)

		cfg, err := s.service.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, s.backend, cfg.BackendSigner)
	})
}
