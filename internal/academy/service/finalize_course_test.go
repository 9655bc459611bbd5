package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
)

func (s *EngineSuite) TestFinalizeCourse() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("fin-101")
	s.enroll("fin-101")

	s.T().Run("incomplete lessons rejected", func(t *testing.T) {
		_, err := s.service.FinalizeCourse(ctx, s.backend, models.FinalizeCourseParams{
			CourseID: "fin-101",
			Learner:  s.learner,
		})
		require.ErrorIs(t, err, ErrCourseNotCompleted)
	})

	s.completeAllLessons("fin-101", 3)

	s.T().Run("non-backend signer rejected", func(t *testing.T) {
		_, err := s.service.FinalizeCourse(ctx, s.learner, models.FinalizeCourseParams{
			CourseID: "fin-101",
			Learner:  s.learner,
		})
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("stamps completion and mints the bonus", func(t *testing.T) {
		enr := s.finalize("fin-101")
		assert.True(t, enr.Completed())
		assert.Equal(t, s.now.Unix(), enr.CompletedAt.Unix)

		// 3 lessons x 100 XP + 500 completion bonus.
		assert.Equal(t, uint64(800), s.xp.Balance(s.learner))

		course, err := s.service.GetCourse(ctx, "fin-101")
		require.NoError(t, err)
		assert.Equal(t, uint32(1), course.TotalCompletions)

		// First completion is below the threshold of 2: no royalty yet.
		assert.Zero(t, s.xp.Balance(s.creator))
	})

	s.T().Run("second finalize is a conflict", func(t *testing.T) {
		_, err := s.service.FinalizeCourse(ctx, s.backend, models.FinalizeCourseParams{
			CourseID: "fin-101",
			Learner:  s.learner,
		})
		require.ErrorIs(t, err, ErrCourseAlreadyFinalized)
		assert.Equal(t, uint64(800), s.xp.Balance(s.learner), "no double bonus")
	})
}

func (s *EngineSuite) TestFinalizeCreatorRoyalty() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("roy-101")

	finish := func(learner byte) {
		id := testIdentity(learner)
		_, err := s.service.Enroll(ctx, models.EnrollParams{CourseID: "roy-101", Learner: id})
		require.NoError(s.T(), err)
		for i := uint8(0); i < 3; i++ {
			_, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
				CourseID:    "roy-101",
				Learner:     id,
				LessonIndex: i,
			})
			require.NoError(s.T(), err)
		}
		_, err = s.service.FinalizeCourse(ctx, s.backend, models.FinalizeCourseParams{
			CourseID: "roy-101",
			Learner:  id,
		})
		require.NoError(s.T(), err)
	}

	// Threshold is 2 completions: the first pays nothing, the second and
	// every later one pays the 250 XP royalty.
	finish(0x20)
	assert.Zero(s.T(), s.xp.Balance(s.creator))

	finish(0x21)
	assert.Equal(s.T(), uint64(250), s.xp.Balance(s.creator))

	finish(0x22)
	assert.Equal(s.T(), uint64(500), s.xp.Balance(s.creator))
}

func (s *EngineSuite) TestFinalizeZeroRewards() {
	ctx := context.Background()
	s.bootstrap()

	params := s.newCourseParams("free-101")
	params.CompletionBonusXP = 0
	params.CreatorRewardXP = 0
	params.MinCompletionsForReward = 0
	_, err := s.service.CreateCourse(ctx, s.authority, params)
	require.NoError(s.T(), err)

	s.enroll("free-101")
	s.completeAllLessons("free-101", 3)
	enr := s.finalize("free-101")

	assert.True(s.T(), enr.Completed())
	assert.Equal(s.T(), uint64(300), s.xp.Balance(s.learner), "lesson XP only, no bonus")
	assert.Zero(s.T(), s.xp.Balance(s.creator), "zero royalty never mints, threshold or not")
}
