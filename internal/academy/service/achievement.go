package service

import (
	"context"
	"errors"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/internal/token"
	"academy/pkg/domain"
)

// CreateAchievementType defines a new mintable achievement. Only the root
// authority may call it.
func (s *Service) CreateAchievementType(ctx context.Context, signer domain.Identity, params models.CreateAchievementTypeParams) (*models.AchievementType, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var typ *models.AchievementType
	err := s.transition(ctx, "create_achievement_type", ledger.KindAchievementType, ledger.AchievementTypeAddress(params.AchievementID), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.Authority) {
			return ErrUnauthorized
		}

		_, err = s.store.AchievementType(ctx, params.AchievementID)
		if err == nil {
			return ErrAchievementExists
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			return err
		}

		typ = &models.AchievementType{
			AchievementID: params.AchievementID,
			Name:          params.Name,
			MetadataRef:   params.MetadataRef,
			MaxSupply:     params.MaxSupply,
			XPReward:      params.XPReward,
			IsActive:      true,
			CreatedAt:     s.now(),
		}
		if err := s.store.PutAchievementType(ctx, typ); err != nil {
			return err
		}

		s.logEvent(ctx, "AchievementTypeCreated",
			"achievement_id", params.AchievementID,
			"max_supply", params.MaxSupply,
			"xp_reward", params.XPReward,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return typ, nil
}

// DeactivateAchievementType stops further awards of an achievement. Issued
// receipts and assets are untouched.
func (s *Service) DeactivateAchievementType(ctx context.Context, signer domain.Identity, achievementID string) error {
	return s.transition(ctx, "deactivate_achievement_type", ledger.KindAchievementType, ledger.AchievementTypeAddress(achievementID), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.Authority) {
			return ErrUnauthorized
		}

		typ, err := s.store.AchievementType(ctx, achievementID)
		if err != nil {
			return notFound(err, ErrAchievementNotFound)
		}
		typ.IsActive = false
		if err := s.store.PutAchievementType(ctx, typ); err != nil {
			return err
		}

		s.logEvent(ctx, "AchievementTypeDeactivated", "achievement_id", achievementID)
		return nil
	})
}

// AwardAchievement mints the achievement asset to a recipient, records the
// receipt that structurally prevents a second award, and mints the
// achievement's XP reward. Only the backend signer may call it.
func (s *Service) AwardAchievement(ctx context.Context, signer domain.Identity, achievementID string, recipient domain.Identity) (*models.AchievementReceipt, error) {
	var receipt *models.AchievementReceipt
	err := s.transition(ctx, "award_achievement", ledger.KindAchievementType, ledger.AchievementTypeAddress(achievementID), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.BackendSigner) {
			return ErrUnauthorized
		}

		typ, err := s.store.AchievementType(ctx, achievementID)
		if err != nil {
			return notFound(err, ErrAchievementNotFound)
		}
		if !typ.IsActive {
			return ErrAchievementNotActive
		}
		if typ.SupplyExhausted() {
			return ErrAchievementSupplyExhausted
		}

		_, err = s.store.Receipt(ctx, achievementID, recipient)
		if err == nil {
			return ErrAlreadyAwarded
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			return err
		}

		reward := uint64(typ.XPReward)
		if reward > 0 {
			if err := s.xp.CanMintTo(recipient, reward); err != nil {
				return err
			}
		}

		now := s.now()
		asset := token.AchievementAssetAddress(achievementID, recipient)
		if err := s.assets.Create(s.mintAuthority(), token.Asset{
			Address:     asset,
			Owner:       recipient,
			Name:        typ.Name,
			MetadataURI: typ.MetadataRef.String(),
			Attributes:  map[string]string{"achievement_id": achievementID},
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}

		receipt = &models.AchievementReceipt{
			AchievementType: ledger.AchievementTypeAddress(achievementID),
			Recipient:       recipient,
			Asset:           asset,
			AwardedAt:       now,
		}
		if err := s.store.PutReceipt(ctx, achievementID, receipt); err != nil {
			return err
		}
		typ.IssuedCount++
		if err := s.store.PutAchievementType(ctx, typ); err != nil {
			return err
		}
		if reward > 0 {
			if err := s.xp.MintTo(s.mintAuthority(), recipient, reward); err != nil {
				return err
			}
			s.countXP("achievement", reward)
		}

		s.countAchievementAwarded()
		s.logEvent(ctx, "AchievementAwarded",
			"achievement_id", achievementID,
			"recipient", recipient.String(),
			"issued_count", typ.IssuedCount,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
