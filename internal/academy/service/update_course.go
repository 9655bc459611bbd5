package service

import (
	"context"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// UpdateCourse patches a course's mutable fields. Only the course authority
// may call it. The version counter bumps only when the content reference
// actually changes; toggling activity or tuning rewards leaves it alone.
func (s *Service) UpdateCourse(ctx context.Context, signer domain.Identity, params models.UpdateCourseParams) (*models.Course, error) {
	courseID, err := domain.ParseCourseID(params.CourseID)
	if err != nil {
		return nil, err
	}

	var course *models.Course
	err = s.transition(ctx, "update_course", ledger.KindCourse, ledger.CourseAddress(courseID), func(ctx context.Context) error {
		course, err = s.store.Course(ctx, courseID)
		if err != nil {
			return notFound(err, ErrCourseNotFound)
		}
		if !signer.Equal(course.Authority) {
			return ErrUnauthorized
		}

		if params.ContentRef.Valid && params.ContentRef.Value != course.ContentRef {
			course.ContentRef = params.ContentRef.Value
			course.Version++
		}
		if params.IsActive.Valid {
			course.IsActive = params.IsActive.Value
		}
		if params.XPPerLesson.Valid {
			course.XPPerLesson = params.XPPerLesson.Value
		}
		if params.CompletionBonusXP.Valid {
			course.CompletionBonusXP = params.CompletionBonusXP.Value
		}
		if params.CreatorRewardXP.Valid {
			course.CreatorRewardXP = params.CreatorRewardXP.Value
		}
		if params.MinCompletionsForReward.Valid {
			course.MinCompletionsForReward = params.MinCompletionsForReward.Value
		}
		course.UpdatedAt = s.now()

		if err := s.store.PutCourse(ctx, course); err != nil {
			return err
		}

		s.logEvent(ctx, "CourseUpdated",
			"course_id", courseID.String(),
			"version", course.Version,
			"is_active", course.IsActive,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}
