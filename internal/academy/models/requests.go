package models

import (
	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

// Patch fields carry an explicit "unchanged vs set" flag so "set to zero" and
// "leave unchanged" stay distinguishable.

type OptionalU16 struct {
	Valid bool
	Value uint16
}

type OptionalU32 struct {
	Valid bool
	Value uint32
}

type OptionalBool struct {
	Valid bool
	Value bool
}

type OptionalContentRef struct {
	Valid bool
	Value domain.ContentRef
}

type OptionalIdentity struct {
	Valid bool
	Value domain.Identity
}

func SetU16(v uint16) OptionalU16 { return OptionalU16{Valid: true, Value: v} }
func SetU32(v uint32) OptionalU32 { return OptionalU32{Valid: true, Value: v} }
func SetBool(v bool) OptionalBool { return OptionalBool{Valid: true, Value: v} }

func SetContentRef(v domain.ContentRef) OptionalContentRef {
	return OptionalContentRef{Valid: true, Value: v}
}

func SetIdentity(v domain.Identity) OptionalIdentity {
	return OptionalIdentity{Valid: true, Value: v}
}

// CreateCourseParams are the caller-supplied fields of createCourse. All
// reward parameters are accepted from the caller; deployment defaults belong
// to the relay, not the engine.
type CreateCourseParams struct {
	CourseID                string
	Creator                 domain.Identity
	ContentRef              domain.ContentRef
	LessonCount             uint8
	Difficulty              Difficulty
	XPPerLesson             uint32
	TrackID                 uint16
	TrackLevel              uint8
	Prerequisite            domain.Address // zero for none
	CompletionBonusXP       uint32
	CreatorRewardXP         uint32
	MinCompletionsForReward uint16
}

// Validate enforces the createCourse validation guards.
func (p *CreateCourseParams) Validate() error {
	if _, err := domain.ParseCourseID(p.CourseID); err != nil {
		return err
	}
	if p.LessonCount < 1 {
		return dErrors.New(dErrors.CodeValidation, "lesson count must be at least 1")
	}
	if !p.Difficulty.Valid() {
		return dErrors.New(dErrors.CodeValidation, "difficulty must be 1, 2, or 3")
	}
	return nil
}

// UpdateCourseParams patch a subset of the course's mutable fields. Absent
// fields are left unchanged. Lesson count is immutable: changing it would
// reinterpret recorded progress bitsets.
type UpdateCourseParams struct {
	CourseID                string
	ContentRef              OptionalContentRef
	IsActive                OptionalBool
	XPPerLesson             OptionalU32
	CompletionBonusXP       OptionalU32
	CreatorRewardXP         OptionalU32
	MinCompletionsForReward OptionalU16
}

// UpdateConfigParams patch the config account. A nil backend signer is a
// no-op, matching the original instruction.
type UpdateConfigParams struct {
	BackendSigner OptionalIdentity
}

// EnrollParams carry the learner-signed enrollment request. The prerequisite
// enrollment, when the course demands one, must be supplied by the caller;
// the engine never searches for it.
type EnrollParams struct {
	CourseID               string
	Learner                domain.Identity
	PrerequisiteEnrollment domain.Address // zero when the course has no prerequisite
}

// CompleteLessonParams record one lesson completion. Enrollment may name an
// explicit enrollment account; when zero it is derived from (course, learner).
// The engine verifies the supplied enrollment actually belongs to the course.
type CompleteLessonParams struct {
	CourseID    string
	Learner     domain.Identity
	LessonIndex uint8
	Enrollment  domain.Address
}

// FinalizeCourseParams finalize a fully completed enrollment.
type FinalizeCourseParams struct {
	CourseID   string
	Learner    domain.Identity
	Enrollment domain.Address
}

// IssueCredentialParams name the credential asset minted or upgraded for a
// finalized enrollment.
type IssueCredentialParams struct {
	CourseID       string
	Learner        domain.Identity
	CredentialName string
	MetadataURI    string
}

// RegisterMinterParams authorize a delegated XP minter.
type RegisterMinterParams struct {
	Minter       domain.Identity
	Label        string
	MaxXPPerCall uint64
}

func (p *RegisterMinterParams) Validate() error {
	if p.Minter.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "minter identity is required")
	}
	if len(p.Label) == 0 || len(p.Label) > MaxLabelLen {
		return dErrors.New(dErrors.CodeValidation, "minter label must be 1-32 bytes")
	}
	if p.MaxXPPerCall == 0 {
		return dErrors.New(dErrors.CodeValidation, "max XP per call must be positive")
	}
	return nil
}

// CreateAchievementTypeParams define a new achievement type.
type CreateAchievementTypeParams struct {
	AchievementID string
	Name          string
	MetadataRef   domain.ContentRef
	MaxSupply     uint32 // 0 means uncapped
	XPReward      uint32
}

func (p *CreateAchievementTypeParams) Validate() error {
	if len(p.AchievementID) == 0 || len(p.AchievementID) > MaxLabelLen {
		return dErrors.New(dErrors.CodeValidation, "achievement ID must be 1-32 bytes")
	}
	if len(p.Name) == 0 || len(p.Name) > MaxLabelLen {
		return dErrors.New(dErrors.CodeValidation, "achievement name must be 1-32 bytes")
	}
	return nil
}
