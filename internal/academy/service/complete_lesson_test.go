package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
	"academy/internal/ledger"
)

func (s *EngineSuite) TestCompleteLesson() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("xp-101")
	s.enroll("xp-101")

	s.T().Run("sets the bit and mints per-lesson XP", func(t *testing.T) {
		enr, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
			CourseID:    "xp-101",
			Learner:     s.learner,
			LessonIndex: 1,
		})
		require.NoError(t, err)
		assert.True(t, enr.LessonFlags.IsSet(1))
		assert.Equal(t, 1, enr.LessonFlags.Count())
		assert.Equal(t, uint64(100), s.xp.Balance(s.learner))
	})

	s.T().Run("duplicate completion minted nothing", func(t *testing.T) {
		_, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
			CourseID:    "xp-101",
			Learner:     s.learner,
			LessonIndex: 1,
		})
		require.ErrorIs(t, err, ErrLessonAlreadyCompleted)
		assert.Equal(t, uint64(100), s.xp.Balance(s.learner))
	})

	s.T().Run("index out of bounds", func(t *testing.T) {
		_, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
			CourseID:    "xp-101",
			Learner:     s.learner,
			LessonIndex: 3, // lessons are 0..2
		})
		require.ErrorIs(t, err, ErrLessonOutOfBounds)
	})

	s.T().Run("non-backend signer rejected", func(t *testing.T) {
		_, err := s.service.CompleteLesson(ctx, s.learner, models.CompleteLessonParams{
			CourseID:    "xp-101",
			Learner:     s.learner,
			LessonIndex: 0,
		})
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("not enrolled", func(t *testing.T) {
		_, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
			CourseID:    "xp-101",
			Learner:     testIdentity(0x0b),
			LessonIndex: 0,
		})
		require.ErrorIs(t, err, ErrNotEnrolled)
	})
}

func (s *EngineSuite) TestCompleteLessonEnrollmentMismatch() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("mm-1")
	s.createCourse("mm-2")
	s.enroll("mm-1")
	s.enroll("mm-2")

	// The mm-2 enrollment presented against course mm-1 must be rejected even
	// though both accounts exist and belong to the learner.
	_, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
		CourseID:    "mm-1",
		Learner:     s.learner,
		LessonIndex: 0,
		Enrollment:  ledger.EnrollmentAddress("mm-2", s.learner),
	})
	require.ErrorIs(s.T(), err, ErrEnrollmentCourseMismatch)

	enr, err := s.service.GetEnrollment(ctx, "mm-2", s.learner)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), enr.LessonFlags.Count(), "rejected transition must not touch the bitset")
	assert.Zero(s.T(), s.xp.Balance(s.learner))
}
