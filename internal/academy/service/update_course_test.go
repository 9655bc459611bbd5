package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
	"academy/pkg/domain"
)

func (s *EngineSuite) TestUpdateCourse() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("go-201")

	s.T().Run("unknown course", func(t *testing.T) {
		_, err := s.service.UpdateCourse(ctx, s.authority, models.UpdateCourseParams{CourseID: "missing"})
		require.ErrorIs(t, err, ErrCourseNotFound)
	})

	s.T().Run("non-authority signer rejected", func(t *testing.T) {
		_, err := s.service.UpdateCourse(ctx, s.learner, models.UpdateCourseParams{CourseID: "go-201"})
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	s.T().Run("reward tuning does not bump version", func(t *testing.T) {
		course, err := s.service.UpdateCourse(ctx, s.authority, models.UpdateCourseParams{
			CourseID:                "go-201",
			XPPerLesson:             models.SetU32(150),
			CompletionBonusXP:       models.SetU32(0),
			CreatorRewardXP:         models.SetU32(300),
			MinCompletionsForReward: models.SetU16(5),
			IsActive:                models.SetBool(false),
		})
		require.NoError(t, err)
		assert.Equal(t, uint16(1), course.Version)
		assert.Equal(t, uint32(150), course.XPPerLesson)
		assert.Zero(t, course.CompletionBonusXP)
		assert.Equal(t, uint32(300), course.CreatorRewardXP)
		assert.Equal(t, uint16(5), course.MinCompletionsForReward)
		assert.False(t, course.IsActive)
	})

	s.T().Run("content change bumps version", func(t *testing.T) {
		ref, err := domain.ParseContentRef("aa11223344556677889900aabbccddeeff00112233445566778899aabbccddee")
		require.NoError(t, err)

		course, err := s.service.UpdateCourse(ctx, s.authority, models.UpdateCourseParams{
			CourseID:   "go-201",
			ContentRef: models.SetContentRef(ref),
		})
		require.NoError(t, err)
		assert.Equal(t, uint16(2), course.Version)
		assert.Equal(t, ref, course.ContentRef)

		// Same reference again: no change, no bump.
		course, err = s.service.UpdateCourse(ctx, s.authority, models.UpdateCourseParams{
			CourseID:   "go-201",
			ContentRef: models.SetContentRef(ref),
		})
		require.NoError(t, err)
		assert.Equal(t, uint16(2), course.Version)
	})

	s.T().Run("lesson count stays immutable", func(t *testing.T) {
		course, err := s.service.GetCourse(ctx, "go-201")
		require.NoError(t, err)
		assert.Equal(t, uint8(3), course.LessonCount)
	})
}
