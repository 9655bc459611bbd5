package service

import (
	"context"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// FinalizeCourse stamps a fully completed enrollment and settles the
// completion rewards: the completion bonus to the learner, and, once the
// course's completion count reaches the reward threshold, the creator royalty.
// Only the backend signer may call it.
func (s *Service) FinalizeCourse(ctx context.Context, signer domain.Identity, params models.FinalizeCourseParams) (*models.Enrollment, error) {
	courseID, err := domain.ParseCourseID(params.CourseID)
	if err != nil {
		return nil, err
	}

	var enr *models.Enrollment
	err = s.transition(ctx, "finalize_course", ledger.KindEnrollment, ledger.CourseAddress(courseID), func(ctx context.Context) error {
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
		if enr.Completed() {
			return ErrCourseAlreadyFinalized
		}
		if !enr.LessonFlags.AllSet(int(course.LessonCount)) {
			return ErrCourseNotCompleted
		}

		bonus := uint64(course.CompletionBonusXP)
		course.TotalCompletions++
		creatorReward := uint64(0)
		if course.CreatorRewardXP > 0 && course.TotalCompletions >= uint32(course.MinCompletionsForReward) {
			creatorReward = uint64(course.CreatorRewardXP)
		}
		if bonus > 0 {
			if err := s.xp.CanMintTo(params.Learner, bonus); err != nil {
				return err
			}
		}
		if creatorReward > 0 {
			if err := s.xp.CanMintTo(course.Creator, creatorReward); err != nil {
				return err
			}
		}

		// Mints first: minting the bonus and the royalty sequentially means
		// the second can still overflow the total supply after the first
		// committed, so an overflow there unwinds the first mint before the
		// transition aborts.
		if bonus > 0 {
			if err := s.xp.MintTo(s.mintAuthority(), params.Learner, bonus); err != nil {
				return err
			}
		}
		if creatorReward > 0 {
			if err := s.xp.MintTo(s.mintAuthority(), course.Creator, creatorReward); err != nil {
				if bonus > 0 {
					_ = s.xp.BurnFrom(s.mintAuthority(), params.Learner, bonus)
				}
				return err
			}
		}

		enr.CompletedAt = models.SomeTime(s.now())
		if err := s.store.PutEnrollment(ctx, courseID, enr); err != nil {
			return err
		}
		if err := s.store.PutCourse(ctx, course); err != nil {
			return err
		}

		if bonus > 0 {
			s.countXP("completion_bonus", bonus)
		}
		if creatorReward > 0 {
			s.countXP("creator_reward", creatorReward)
		}
		s.countFinalized()
		s.logEvent(ctx, "CourseFinalized",
			"course_id", courseID.String(),
			"learner", params.Learner.String(),
			"total_completions", course.TotalCompletions,
			"completion_bonus_xp", bonus,
			"creator_reward_xp", creatorReward,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enr, nil
}
