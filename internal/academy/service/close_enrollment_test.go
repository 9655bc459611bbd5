package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"academy/internal/academy/models"
)

func (s *EngineSuite) TestCloseEnrollment() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("cool-101")
	s.enroll("cool-101")

	s.T().Run("within cooldown rejected", func(t *testing.T) {
		err := s.service.CloseEnrollment(ctx, "cool-101", s.learner)
		require.ErrorIs(t, err, ErrCloseCooldown)
	})

	s.T().Run("exactly 24h is still inside the cooldown", func(t *testing.T) {
		s.advance(24 * time.Hour)
		err := s.service.CloseEnrollment(ctx, "cool-101", s.learner)
		require.ErrorIs(t, err, ErrCloseCooldown)
	})

	s.T().Run("past cooldown destroys the record", func(t *testing.T) {
		s.advance(time.Second)
		err := s.service.CloseEnrollment(ctx, "cool-101", s.learner)
		require.NoError(t, err)

		_, err = s.service.GetEnrollment(ctx, "cool-101", s.learner)
		require.ErrorIs(t, err, ErrNotEnrolled)
	})

	s.T().Run("not enrolled", func(t *testing.T) {
		err := s.service.CloseEnrollment(ctx, "cool-101", s.learner)
		require.ErrorIs(t, err, ErrNotEnrolled)
	})
}

func (s *EngineSuite) TestCloseEnrollmentPermitsReEnrollment() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("again-101")
	s.enroll("again-101")

	_, err := s.service.CompleteLesson(ctx, s.backend, models.CompleteLessonParams{
		CourseID:    "again-101",
		Learner:     s.learner,
		LessonIndex: 0,
	})
	require.NoError(s.T(), err)

	s.advance(24*time.Hour + time.Second)
	require.NoError(s.T(), s.service.CloseEnrollment(ctx, "again-101", s.learner))

	// Re-enrollment starts from a fresh account: zeroed bitset, new
	// enrolledAt, and the course counts the enrollment again.
	enr := s.enroll("again-101")
	s.Zero(enr.LessonFlags.Count())
	s.False(enr.LessonFlags.IsSet(0))
	s.False(enr.Completed())
	s.Equal(s.now.Unix(), enr.EnrolledAt)

	course, err := s.service.GetCourse(ctx, "again-101")
	s.Require().NoError(err)
	s.Equal(uint32(2), course.TotalEnrollments)
}

func (s *EngineSuite) TestCloseEnrollmentFinalizedSkipsCooldown() {
	ctx := context.Background()
	s.bootstrap()
	s.createCourse("done-101")
	s.enroll("done-101")
	s.completeAllLessons("done-101", 3)
	s.finalize("done-101")

	// No clock advance: a finalized enrollment closes immediately.
	err := s.service.CloseEnrollment(ctx, "done-101", s.learner)
	require.NoError(s.T(), err)

	_, err = s.service.GetEnrollment(ctx, "done-101", s.learner)
	require.ErrorIs(s.T(), err, ErrNotEnrolled)
}
