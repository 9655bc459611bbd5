package service

import (
	"context"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// UpdateConfig patches the config account. Only the root authority may call
// it; an absent backend signer field is a no-op.
func (s *Service) UpdateConfig(ctx context.Context, signer domain.Identity, params models.UpdateConfigParams) error {
	return s.transition(ctx, "update_config", ledger.KindConfig, ledger.ConfigAddress(), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.Authority) {
			return ErrUnauthorized
		}

		if !params.BackendSigner.Valid {
			return nil
		}
		cfg.BackendSigner = params.BackendSigner.Value
		if err := s.store.PutConfig(ctx, cfg); err != nil {
			return err
		}

		s.logEvent(ctx, "ConfigUpdated",
			"field", "backend_signer",
			"timestamp", s.now(),
		)
		return nil
	})
}
