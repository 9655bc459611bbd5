package service

import (
	"context"
	"strconv"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/internal/token"
	"academy/pkg/domain"
)

// IssueCredential mints or upgrades the learner's track credential for a
// finalized enrollment. One credential asset exists per (track, learner):
// finishing a higher-level course in the same track upgrades the existing
// asset in place rather than minting a second one. Only the backend signer
// may call it.
func (s *Service) IssueCredential(ctx context.Context, signer domain.Identity, params models.IssueCredentialParams) (domain.Address, error) {
	courseID, err := domain.ParseCourseID(params.CourseID)
	if err != nil {
		return domain.ZeroAddress, err
	}

	var asset domain.Address
	err = s.transition(ctx, "issue_credential", ledger.KindEnrollment, ledger.CourseAddress(courseID), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.BackendSigner) {
			return ErrUnauthorized
		}

		course, err := s.store.Course(ctx, courseID)
		if err != nil {
			return notFound(err, ErrCourseNotFound)
		}
		enr, err := s.store.Enrollment(ctx, courseID, params.Learner)
		if err != nil {
			return notFound(err, ErrNotEnrolled)
		}
		if !enr.Completed() {
			return ErrCourseNotFinalized
		}

		asset = token.CredentialAssetAddress(course.TrackID, params.Learner)
		if !enr.CredentialAsset.IsZero() && !enr.CredentialAsset.Equal(asset) {
			return ErrCredentialAssetMismatch
		}

		now := s.now()
		attrs := map[string]string{
			"track_id":          strconv.FormatUint(uint64(course.TrackID), 10),
			"track_level":       strconv.FormatUint(uint64(course.TrackLevel), 10),
			"courses_completed": strconv.FormatUint(uint64(course.TotalCompletions), 10),
			"total_xp":          strconv.FormatUint(s.xp.Balance(params.Learner), 10),
		}
		upgraded := s.assets.Exists(asset)
		if upgraded {
			err = s.assets.Update(s.mintAuthority(), asset, params.CredentialName, params.MetadataURI, attrs, now)
		} else {
			err = s.assets.Create(s.mintAuthority(), token.Asset{
				Address:     asset,
				Owner:       params.Learner,
				Name:        params.CredentialName,
				MetadataURI: params.MetadataURI,
				Attributes:  attrs,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err != nil {
			return err
		}

		if enr.CredentialAsset.IsZero() {
			enr.CredentialAsset = asset
			if err := s.store.PutEnrollment(ctx, courseID, enr); err != nil {
				return err
			}
		}

		s.countCredentialIssued()
		s.logEvent(ctx, "CredentialIssued",
			"course_id", courseID.String(),
			"learner", params.Learner.String(),
			"asset", asset.String(),
			"upgraded", upgraded,
		)
		return nil
	})
	if err != nil {
		return domain.ZeroAddress, err
	}
	return asset, nil
}
