package service

import (
	"context"
	"errors"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// Initialize creates the singleton Config account and binds the XP mint
// authority to it. The initializing signer becomes both the root authority
// and, until delegated, the backend signer.
func (s *Service) Initialize(ctx context.Context, authority domain.Identity) (*models.Config, error) {
	var cfg *models.Config
	err := s.transition(ctx, "initialize", ledger.KindConfig, ledger.ConfigAddress(), func(ctx context.Context) error {
		_, err := s.store.Config(ctx)
		if err == nil {
			return ErrConfigExists
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			return err
		}

		cfg = &models.Config{
			Authority:     authority,
			BackendSigner: authority,
			XPMint:        s.xp.Mint(),
		}
		if err := s.store.PutConfig(ctx, cfg); err != nil {
			return err
		}

		s.logEvent(ctx, "ConfigInitialized",
			"authority", authority.String(),
			"xp_mint", cfg.XPMint.String(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
