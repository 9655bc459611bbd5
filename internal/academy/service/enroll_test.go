package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
	"academy/internal/ledger"
)

func (s *EngineSuite) TestEnroll() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("sol-101")

	s.T().Run("creates enrollment with zero bitset", func(t *testing.T) {
		enr, err := s.service.Enroll(ctx, models.EnrollParams{CourseID: "sol-101", Learner: s.learner})
		require.NoError(t, err)
		assert.Equal(t, ledger.CourseAddress("sol-101"), enr.Course)
		assert.Equal(t, s.learner, enr.Learner)
		assert.Equal(t, s.now.Unix(), enr.EnrolledAt)
		assert.Zero(t, enr.LessonFlags.Count())
		assert.False(t, enr.Completed())

		course, err := s.service.GetCourse(ctx, "sol-101")
		require.NoError(t, err)
		assert.Equal(t, uint32(1), course.TotalEnrollments)
	})

	s.T().Run("double enroll is a conflict", func(t *testing.T) {
		_, err := s.service.Enroll(ctx, models.EnrollParams{CourseID: "sol-101", Learner: s.learner})
		require.ErrorIs(t, err, ErrAlreadyEnrolled)

		course, err := s.service.GetCourse(ctx, "sol-101")
		require.NoError(t, err)
		assert.Equal(t, uint32(1), course.TotalEnrollments, "losing enroll must not bump the counter")
	})

	s.T().Run("inactive course rejected", func(t *testing.T) {
		_, err := s.service.UpdateCourse(ctx, s.authority, models.UpdateCourseParams{
			CourseID: "sol-101",
			IsActive: models.SetBool(false),
		})
		require.NoError(t, err)

		_, err = s.service.Enroll(ctx, models.EnrollParams{CourseID: "sol-101", Learner: testIdentity(0x09)})
		require.ErrorIs(t, err, ErrCourseNotActive)
	})

	s.T().Run("unknown course", func(t *testing.T) {
		_, err := s.service.Enroll(ctx, models.EnrollParams{CourseID: "missing", Learner: s.learner})
		require.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func (s *EngineSuite) TestEnrollPrerequisite() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("track-1")

	advanced := s.newCourseParams("track-2")
	advanced.TrackLevel = 2
	advanced.Prerequisite = ledger.CourseAddress("track-1")
	_, err := s.service.CreateCourse(ctx, s.authority, advanced)
	require.NoError(s.T(), err)

	prereqAddr := ledger.EnrollmentAddress("track-1", s.learner)

	s.T().Run("prerequisite enrollment not supplied", func(t *testing.T) {
		_, err := s.service.Enroll(ctx, models.EnrollParams{CourseID: "track-2", Learner: s.learner})
		require.ErrorIs(t, err, ErrPrerequisiteNotMet)
	})

	s.enroll("track-1")

	s.T().Run("unfinished prerequisite rejected", func(t *testing.T) {
		_, err := s.service.Enroll(ctx, models.EnrollParams{
			CourseID:               "track-2",
			Learner:                s.learner,
			PrerequisiteEnrollment: prereqAddr,
		})
		require.ErrorIs(t, err, ErrPrerequisiteNotMet)
	})

	s.completeAllLessons("track-1", 3)
	s.finalize("track-1")

	s.T().Run("someone else's finalized enrollment rejected", func(t *testing.T) {
		_, err := s.service.Enroll(ctx, models.EnrollParams{
			CourseID:               "track-2",
			Learner:                testIdentity(0x0a),
			PrerequisiteEnrollment: prereqAddr,
		})
		require.ErrorIs(t, err, ErrPrerequisiteNotMet)
	})

	s.T().Run("finalized prerequisite admits the learner", func(t *testing.T) {
		enr, err := s.service.Enroll(ctx, models.EnrollParams{
			CourseID:               "track-2",
			Learner:                s.learner,
			PrerequisiteEnrollment: prereqAddr,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.CourseAddress("track-2"), enr.Course)
	})

	s.T().Run("enrollment in the wrong course rejected", func(t *testing.T) {
		deep := s.newCourseParams("track-3")
		deep.TrackLevel = 3
		deep.Prerequisite = ledger.CourseAddress("track-2")
		_, err := s.service.CreateCourse(ctx, s.authority, deep)
		require.NoError(t, err)

		// track-1 enrollment is finalized but is not the track-2 prerequisite.
		_, err = s.service.Enroll(ctx, models.EnrollParams{
			CourseID:               "track-3",
			Learner:                s.learner,
			PrerequisiteEnrollment: prereqAddr,
		})
		require.ErrorIs(t, err, ErrPrerequisiteNotMet)
	})
}
