package service

import (
	"context"
	"errors"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// Enroll creates the (course, learner) enrollment record. The enrollment
// address is derived from the pair, so a second enroll for the same pair is
// structurally a conflict. When the course names a prerequisite, the caller
// must supply their finalized enrollment in that prerequisite course; the
// engine verifies it and never searches for one.
func (s *Service) Enroll(ctx context.Context, params models.EnrollParams) (*models.Enrollment, error) {
	courseID, err := domain.ParseCourseID(params.CourseID)
	if err != nil {
		return nil, err
	}

	var enr *models.Enrollment
	err = s.transition(ctx, "enroll", ledger.KindEnrollment, ledger.CourseAddress(courseID), func(ctx context.Context) error {
		course, err := s.store.Course(ctx, courseID)
		if err != nil {
			return notFound(err, ErrCourseNotFound)
		}
		if !course.IsActive {
			return ErrCourseNotActive
		}

		_, err = s.store.Enrollment(ctx, courseID, params.Learner)
		if err == nil {
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			return err
		}

		if course.HasPrerequisite() {
			if err := s.checkPrerequisite(ctx, course, params); err != nil {
				return err
			}
		}

		enr = &models.Enrollment{
			Course:     ledger.CourseAddress(courseID),
			Learner:    params.Learner,
			EnrolledAt: s.now(),
		}
		course.TotalEnrollments++

		if err := s.store.PutEnrollment(ctx, courseID, enr); err != nil {
			return err
		}
		if err := s.store.PutCourse(ctx, course); err != nil {
			return err
		}

		s.countEnrollment()
		s.logEvent(ctx, "Enrolled",
			"course_id", courseID.String(),
			"learner", params.Learner.String(),
			"total_enrollments", course.TotalEnrollments,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enr, nil
}

// checkPrerequisite verifies the caller-supplied prerequisite enrollment:
// it must belong to this learner, reference the course named as prerequisite,
// and be finalized.
func (s *Service) checkPrerequisite(ctx context.Context, course *models.Course, params models.EnrollParams) error {
	if params.PrerequisiteEnrollment.IsZero() {
		return ErrPrerequisiteNotMet
	}
	prereq, err := s.store.EnrollmentByAddress(ctx, params.PrerequisiteEnrollment)
	if err != nil {
		return notFound(err, ErrPrerequisiteNotMet)
	}
	if !prereq.Course.Equal(course.Prerequisite) || !prereq.Learner.Equal(params.Learner) {
		return ErrPrerequisiteNotMet
	}
	if !prereq.Completed() {
		return ErrPrerequisiteNotMet
	}
	return nil
}
