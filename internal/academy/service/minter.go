package service

import (
	"context"
	"errors"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// RegisterMinter authorizes a delegated identity to mint bounded XP amounts
// outside the course flow. Only the root authority may call it.
func (s *Service) RegisterMinter(ctx context.Context, signer domain.Identity, params models.RegisterMinterParams) (*models.MinterRole, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var role *models.MinterRole
	err := s.transition(ctx, "register_minter", ledger.KindMinterRole, ledger.MinterRoleAddress(params.Minter), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.Authority) {
			return ErrUnauthorized
		}

		_, err = s.store.MinterRole(ctx, params.Minter)
		if err == nil {
			return ErrMinterExists
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			return err
		}

		role = &models.MinterRole{
			Minter:       params.Minter,
			Label:        params.Label,
			MaxXPPerCall: params.MaxXPPerCall,
			IsActive:     true,
			CreatedAt:    s.now(),
		}
		if err := s.store.PutMinterRole(ctx, role); err != nil {
			return err
		}

		s.logEvent(ctx, "MinterRegistered",
			"minter", params.Minter.String(),
			"label", params.Label,
			"max_xp_per_call", params.MaxXPPerCall,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// RevokeMinter deactivates a minter role. The record stays on the ledger so
// its history remains addressable; only the activation flag drops.
func (s *Service) RevokeMinter(ctx context.Context, signer, minter domain.Identity) error {
	return s.transition(ctx, "revoke_minter", ledger.KindMinterRole, ledger.MinterRoleAddress(minter), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.Authority) {
			return ErrUnauthorized
		}

		role, err := s.store.MinterRole(ctx, minter)
		if err != nil {
			return notFound(err, ErrMinterNotFound)
		}
		role.IsActive = false
		if err := s.store.PutMinterRole(ctx, role); err != nil {
			return err
		}

		s.logEvent(ctx, "MinterRevoked", "minter", minter.String())
		return nil
	})
}

// RewardXP mints XP to a recipient on behalf of an active minter, bounded by
// the minter's per-call cap.
func (s *Service) RewardXP(ctx context.Context, minter, recipient domain.Identity, amount uint64) error {
	return s.transition(ctx, "reward_xp", ledger.KindMinterRole, ledger.MinterRoleAddress(minter), func(ctx context.Context) error {
		role, err := s.store.MinterRole(ctx, minter)
		if err != nil {
			return notFound(err, ErrMinterNotFound)
		}
		if !role.IsActive {
			return ErrMinterNotActive
		}
		if amount > role.MaxXPPerCall {
			return ErrMinterCapExceeded
		}
		if err := s.xp.CanMintTo(recipient, amount); err != nil {
			return err
		}

		if err := s.xp.MintTo(s.mintAuthority(), recipient, amount); err != nil {
			return err
		}

		s.countXP("minter_reward", amount)
		s.logEvent(ctx, "XPRewarded",
			"minter", minter.String(),
			"recipient", recipient.String(),
			"amount", amount,
		)
		return nil
	})
}
