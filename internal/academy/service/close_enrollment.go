package service

import (
	"context"
	"time"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// closeCooldown is how long an unfinished enrollment must age before the
// learner can close it and reclaim the storage deposit.
const closeCooldown = 24 * time.Hour

// CloseEnrollment destroys the learner's enrollment record and reclaims its
// storage. A finalized enrollment closes immediately; an unfinished one only
// after the cooldown has strictly elapsed, which keeps enroll/close churn from
// resetting progress for free.
func (s *Service) CloseEnrollment(ctx context.Context, courseIDRaw string, learner domain.Identity) error {
	courseID, err := domain.ParseCourseID(courseIDRaw)
	if err != nil {
		return err
	}

	return s.transition(ctx, "close_enrollment", ledger.KindEnrollment, ledger.CourseAddress(courseID), func(ctx context.Context) error {
		enr, err := s.store.Enrollment(ctx, courseID, learner)
		if err != nil {
			return notFound(err, ErrNotEnrolled)
		}
		if !enr.Completed() {
			elapsed := s.now() - enr.EnrolledAt
			if elapsed <= int64(closeCooldown/time.Second) {
				return ErrCloseCooldown
			}
		}

		if err := s.store.DeleteEnrollment(ctx, courseID, learner); err != nil {
			return err
		}

		s.countEnrollmentClosed()
		s.logEvent(ctx, "EnrollmentClosed",
			"course_id", courseID.String(),
			"learner", learner.String(),
			"completed", enr.Completed(),
			"reclaimed_bytes", models.EnrollmentSize,
		)
		return nil
	})
}
