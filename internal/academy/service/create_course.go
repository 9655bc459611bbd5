package service

import (
	"context"
	"errors"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// CreateCourse creates a new course account keyed by its natural identifier.
// Only the root authority may create courses; the course starts active at
// version 1 with zeroed counters.
func (s *Service) CreateCourse(ctx context.Context, signer domain.Identity, params models.CreateCourseParams) (*models.Course, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	courseID, err := domain.ParseCourseID(params.CourseID)
	if err != nil {
		return nil, err
	}

	var course *models.Course
	err = s.transition(ctx, "create_course", ledger.KindCourse, ledger.CourseAddress(courseID), func(ctx context.Context) error {
		cfg, err := s.store.Config(ctx)
		if err != nil {
			return notFound(err, ErrConfigMissing)
		}
		if !signer.Equal(cfg.Authority) {
			return ErrUnauthorized
		}

		_, err = s.store.Course(ctx, courseID)
		if err == nil {
			return ErrCourseExists
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			return err
		}

		now := s.now()
		course = &models.Course{
			CourseID:                courseID,
			Creator:                 params.Creator,
			Authority:               signer,
			ContentRef:              params.ContentRef,
			Version:                 1,
			LessonCount:             params.LessonCount,
			Difficulty:              params.Difficulty,
			XPPerLesson:             params.XPPerLesson,
			TrackID:                 params.TrackID,
			TrackLevel:              params.TrackLevel,
			Prerequisite:            params.Prerequisite,
			CompletionBonusXP:       params.CompletionBonusXP,
			CreatorRewardXP:         params.CreatorRewardXP,
			MinCompletionsForReward: params.MinCompletionsForReward,
			IsActive:                true,
			CreatedAt:               now,
			UpdatedAt:               now,
		}
		if err := s.store.PutCourse(ctx, course); err != nil {
			return err
		}

		s.countCourseCreated()
		s.logEvent(ctx, "CourseCreated",
			"course_id", courseID.String(),
			"creator", params.Creator.String(),
			"lesson_count", params.LessonCount,
			"difficulty", uint8(params.Difficulty),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}
