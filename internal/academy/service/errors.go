package service

import (
	dErrors "academy/pkg/domain-errors"
)

// Named transition outcomes. Every failure aborts the transition with zero
// side effects; the relay maps these to user-facing strings one-to-one.
var (
	ErrUnauthorized  = dErrors.New(dErrors.CodeUnauthorized, "unauthorized signer")
	ErrConfigExists  = dErrors.New(dErrors.CodeConflict, "config already initialized")
	ErrConfigMissing = dErrors.New(dErrors.CodeNotFound, "config not initialized")

	ErrCourseExists    = dErrors.New(dErrors.CodeConflict, "course already exists")
	ErrCourseNotFound  = dErrors.New(dErrors.CodeNotFound, "course not found")
	ErrCourseNotActive = dErrors.New(dErrors.CodePolicy, "course not active")

	ErrAlreadyEnrolled          = dErrors.New(dErrors.CodeConflict, "already enrolled")
	ErrNotEnrolled              = dErrors.New(dErrors.CodeNotFound, "not enrolled")
	ErrPrerequisiteNotMet       = dErrors.New(dErrors.CodePolicy, "prerequisite not met")
	ErrLessonOutOfBounds        = dErrors.New(dErrors.CodeValidation, "lesson index out of bounds")
	ErrLessonAlreadyCompleted   = dErrors.New(dErrors.CodeConflict, "lesson already completed")
	ErrCourseNotCompleted       = dErrors.New(dErrors.CodePolicy, "not all lessons completed")
	ErrCourseAlreadyFinalized   = dErrors.New(dErrors.CodeConflict, "course already finalized")
	ErrCourseNotFinalized       = dErrors.New(dErrors.CodePolicy, "course not finalized")
	ErrCloseCooldown            = dErrors.New(dErrors.CodePolicy, "close cooldown not met (24h)")
	ErrEnrollmentCourseMismatch = dErrors.New(dErrors.CodeConflict, "enrollment/course mismatch")
	ErrCredentialAssetMismatch  = dErrors.New(dErrors.CodeConflict, "credential asset does not match enrollment record")

	ErrMinterExists      = dErrors.New(dErrors.CodeConflict, "minter already registered")
	ErrMinterNotFound    = dErrors.New(dErrors.CodeNotFound, "minter not registered")
	ErrMinterNotActive   = dErrors.New(dErrors.CodePolicy, "minter not active")
	ErrMinterCapExceeded = dErrors.New(dErrors.CodePolicy, "amount exceeds minter cap")

	ErrAchievementExists          = dErrors.New(dErrors.CodeConflict, "achievement type already exists")
	ErrAchievementNotFound        = dErrors.New(dErrors.CodeNotFound, "achievement type not found")
	ErrAchievementNotActive       = dErrors.New(dErrors.CodePolicy, "achievement type not active")
	ErrAchievementSupplyExhausted = dErrors.New(dErrors.CodePolicy, "achievement supply exhausted")
	ErrAlreadyAwarded             = dErrors.New(dErrors.CodeConflict, "achievement already awarded")
)
