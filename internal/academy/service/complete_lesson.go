package service

import (
	"context"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// CompleteLesson records a single lesson completion and mints the per-lesson
// XP to the learner. Only the backend signer may call it. Duplicate
// submissions are rejected by the bit-already-set guard, not a dedup table.
func (s *Service) CompleteLesson(ctx context.Context, signer domain.Identity, params models.CompleteLessonParams) (*models.Enrollment, error) {
	courseID, err := domain.ParseCourseID(params.CourseID)
	if err != nil {
		return nil, err
	}

	var enr *models.Enrollment
	err = s.transition(ctx, "complete_lesson", ledger.KindEnrollment, ledger.CourseAddress(courseID), func(ctx context.Context) error {
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
		enr, err = s.loadEnrollment(ctx, courseID, params.Learner, params.Enrollment)
		if err != nil {
			return err
		}
		if !enr.Course.Equal(ledger.CourseAddress(courseID)) || !enr.Learner.Equal(params.Learner) {
			return ErrEnrollmentCourseMismatch
		}

		if params.LessonIndex >= course.LessonCount {
			return ErrLessonOutOfBounds
		}
		if enr.LessonFlags.IsSet(int(params.LessonIndex)) {
			return ErrLessonAlreadyCompleted
		}
		if course.XPPerLesson > 0 {
			if err := s.xp.CanMintTo(params.Learner, uint64(course.XPPerLesson)); err != nil {
				return err
			}
		}

		if err := enr.LessonFlags.Set(int(params.LessonIndex)); err != nil {
			return err
		}

		// Mint before persisting the bit. CanMintTo holds no reservation
		// and the XP ledger is shared across courses, so a concurrent mint
		// can consume the headroom between the guard and the commit; a bit
		// persisted ahead of a failed mint would be unrecoverable (the
		// already-set guard blocks retries). If the store write fails after
		// the mint, burn it back so the balance matches the recorded bits.
		if course.XPPerLesson > 0 {
			if err := s.xp.MintTo(s.mintAuthority(), params.Learner, uint64(course.XPPerLesson)); err != nil {
				return err
			}
		}
		if err := s.store.PutEnrollment(ctx, courseID, enr); err != nil {
			if course.XPPerLesson > 0 {
				_ = s.xp.BurnFrom(s.mintAuthority(), params.Learner, uint64(course.XPPerLesson))
			}
			return err
		}
		if course.XPPerLesson > 0 {
			s.countXP("lesson", uint64(course.XPPerLesson))
		}

		s.countLessonCompleted()
		s.logEvent(ctx, "LessonCompleted",
			"course_id", courseID.String(),
			"learner", params.Learner.String(),
			"lesson_index", params.LessonIndex,
			"lessons_completed", enr.LessonFlags.Count(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enr, nil
}

// loadEnrollment resolves the enrollment account for a transition: the
// caller-supplied address when present, the derived (course, learner) address
// otherwise.
func (s *Service) loadEnrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity, explicit domain.Address) (*models.Enrollment, error) {
	if explicit.IsZero() {
		enr, err := s.store.Enrollment(ctx, courseID, learner)
		if err != nil {
			return nil, notFound(err, ErrNotEnrolled)
		}
		return enr, nil
	}
	enr, err := s.store.EnrollmentByAddress(ctx, explicit)
	if err != nil {
		return nil, notFound(err, ErrNotEnrolled)
	}
	return enr, nil
}
