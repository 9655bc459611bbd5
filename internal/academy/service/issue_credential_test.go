package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
	"academy/internal/token"
)

func (s *EngineSuite) TestIssueCredential() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("cred-101")
	s.enroll("cred-101")

	issue := func(courseID string) models.IssueCredentialParams {
		return models.IssueCredentialParams{
			CourseID:       courseID,
			Learner:        s.learner,
			CredentialName: "Track 7 Credential",
			MetadataURI:    "ipfs://credential/7",
		}
	}

	s.T().Run("unfinished enrollment rejected", func(t *testing.T) {
		_, err := s.service.IssueCredential(ctx, s.backend, issue("cred-101"))
		require.ErrorIs(t, err, ErrCourseNotFinalized)
	})

	s.completeAllLessons("cred-101", 3)
	s.finalize("cred-101")

	s.T().Run("non-backend signer rejected", func(t *testing.T) {
		_, err := s.service.IssueCredential(ctx, s.learner, issue("cred-101"))
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("mints a frozen asset and links the enrollment", func(t *testing.T) {
		addr, err := s.service.IssueCredential(ctx, s.backend, issue("cred-101"))
		require.NoError(t, err)
		assert.Equal(t, token.CredentialAssetAddress(7, s.learner), addr)

		asset, err := s.assets.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, s.learner, asset.Owner)
		assert.True(t, asset.Frozen)
		assert.Equal(t, "1", asset.Attributes["track_level"])

		enr, err := s.service.GetEnrollment(ctx, "cred-101", s.learner)
		require.NoError(t, err)
		assert.Equal(t, addr, enr.CredentialAsset)
	})
}

func (s *EngineSuite) TestIssueCredentialUpgrade() {
	ctx := context.Background()
	s.bootstrap()

	// Two courses in the same track; finishing the higher level upgrades the
	// same credential asset instead of minting a second one.
	s.createCourse("trk-lvl1")
	lvl2 := s.newCourseParams("trk-lvl2")
	lvl2.TrackLevel = 2
	_, err := s.service.CreateCourse(ctx, s.authority, lvl2)
	require.NoError(s.T(), err)

	run := func(courseID string) {
		s.enroll(courseID)
		s.completeAllLessons(courseID, 3)
		s.finalize(courseID)
	}

	run("trk-lvl1")
	addr1, err := s.service.IssueCredential(ctx, s.backend, models.IssueCredentialParams{
		CourseID:       "trk-lvl1",
		Learner:        s.learner,
		CredentialName: "Track 7 - Level 1",
		MetadataURI:    "ipfs://credential/7/1",
	})
	require.NoError(s.T(), err)

	run("trk-lvl2")
	addr2, err := s.service.IssueCredential(ctx, s.backend, models.IssueCredentialParams{
		CourseID:       "trk-lvl2",
		Learner:        s.learner,
		CredentialName: "Track 7 - Level 2",
		MetadataURI:    "ipfs://credential/7/2",
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), addr1, addr2, "one credential per (track, learner)")

	asset, err := s.assets.Get(addr2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Track 7 - Level 2", asset.Name)
	assert.Equal(s.T(), "2", asset.Attributes["track_level"])
}

func (s *EngineSuite) TestIssueCredentialAssetMismatch() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("tamper-101")
	s.enroll("tamper-101")
	s.completeAllLessons("tamper-101", 3)
	s.finalize("tamper-101")

	// Corrupt the linkage: the enrollment claims an asset that is not the one
	// derived for this (track, learner). Upgrade must refuse to touch it.
	enr, err := s.service.GetEnrollment(ctx, "tamper-101", s.learner)
	require.NoError(s.T(), err)
	enr.CredentialAsset = token.CredentialAssetAddress(99, s.learner)
	require.NoError(s.T(), s.store.PutEnrollment(ctx, "tamper-101", enr))

	_, err = s.service.IssueCredential(ctx, s.backend, models.IssueCredentialParams{
		CourseID:       "tamper-101",
		Learner:        s.learner,
		CredentialName: "Track 7 Credential",
		MetadataURI:    "ipfs://credential/7",
	})
	require.ErrorIs(s.T(), err, ErrCredentialAssetMismatch)
}
