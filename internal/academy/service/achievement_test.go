package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
	"academy/internal/token"
)

func (s *EngineSuite) TestCreateAchievementType() {
	ctx := context.Background()
	s.bootstrap()

	params := models.CreateAchievementTypeParams{
		AchievementID: "first-deploy",
		Name:          "First Deploy",
		MaxSupply:     2,
		XPReward:      50,
	}

	s.T().Run("non-authority signer rejected", func(t *testing.T) {
		_, err := s.service.CreateAchievementType(ctx, s.backend, params)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("creates active type", func(t *testing.T) {
		typ, err := s.service.CreateAchievementType(ctx, s.authority, params)
		require.NoError(t, err)
		assert.True(t, typ.IsActive)
		assert.Zero(t, typ.IssuedCount)
	})

	s.T().Run("duplicate id is a conflict", func(t *testing.T) {
		_, err := s.service.CreateAchievementType(ctx, s.authority, params)
		require.ErrorIs(t, err, ErrAchievementExists)
	})
}

func (s *EngineSuite) TestAwardAchievement() {
	ctx := context.Background()
	s.bootstrap()

	_, err := s.service.CreateAchievementType(ctx, s.authority, models.CreateAchievementTypeParams{
		AchievementID: "first-deploy",
		Name:          "First Deploy",
		MaxSupply:     2,
		XPReward:      50,
	})
	require.NoError(s.T(), err)

	first := testIdentity(0x40)
	second := testIdentity(0x41)
	third := testIdentity(0x42)

	s.T().Run("non-backend signer rejected", func(t *testing.T) {
		_, err := s.service.AwardAchievement(ctx, s.learner, "first-deploy", first)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("awards asset, receipt, and XP", func(t *testing.T) {
		receipt, err := s.service.AwardAchievement(ctx, s.backend, "first-deploy", first)
		require.NoError(t, err)
		assert.Equal(t, first, receipt.Recipient)
		assert.Equal(t, token.AchievementAssetAddress("first-deploy", first), receipt.Asset)
		assert.True(t, s.assets.Exists(receipt.Asset))
		assert.Equal(t, uint64(50), s.xp.Balance(first))
	})

	s.T().Run("duplicate award is a conflict", func(t *testing.T) {
		_, err := s.service.AwardAchievement(ctx, s.backend, "first-deploy", first)
		require.ErrorIs(t, err, ErrAlreadyAwarded)
		assert.Equal(t, uint64(50), s.xp.Balance(first), "no double reward")
	})

	s.T().Run("supply cap enforced", func(t *testing.T) {
		_, err := s.service.AwardAchievement(ctx, s.backend, "first-deploy", second)
		require.NoError(t, err)

		_, err = s.service.AwardAchievement(ctx, s.backend, "first-deploy", third)
		require.ErrorIs(t, err, ErrAchievementSupplyExhausted)
		assert.Zero(t, s.xp.Balance(third))
	})

	s.T().Run("unknown type", func(t *testing.T) {
		_, err := s.service.AwardAchievement(ctx, s.backend, "missing", first)
		require.ErrorIs(t, err, ErrAchievementNotFound)
	})
}

func (s *EngineSuite) TestDeactivateAchievementType() {
	ctx := context.Background()
	s.bootstrap()

	_, err := s.service.CreateAchievementType(ctx, s.authority, models.CreateAchievementTypeParams{
		AchievementID: "legacy-badge",
		Name:          "Legacy Badge",
		XPReward:      10,
	})
	require.NoError(s.T(), err)

	s.T().Run("non-authority signer rejected", func(t *testing.T) {
		err := s.service.DeactivateAchievementType(ctx, s.backend, "legacy-badge")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("deactivated type stops awarding", func(t *testing.T) {
		require.NoError(t, s.service.DeactivateAchievementType(ctx, s.authority, "legacy-badge"))

		_, err := s.service.AwardAchievement(ctx, s.backend, "legacy-badge", testIdentity(0x43))
		require.ErrorIs(t, err, ErrAchievementNotActive)
	})
}
