// Package models holds the ledger account records and their fixed binary
// layouts. Accounts are mutated only through the transition engine.
package models

import (
	"academy/pkg/domain"
)

// Config is the singleton root account. Created once by Initialize; only the
// authority may mutate it; it is never destroyed.
type Config struct {
	Authority     domain.Identity
	BackendSigner domain.Identity
	XPMint        domain.Address
}

// Course is the per-course account, addressed by its natural key.
type Course struct {
	CourseID                domain.CourseID
	Creator                 domain.Identity
	Authority               domain.Identity
	ContentRef              domain.ContentRef
	Version                 uint16
	LessonCount             uint8
	Difficulty              Difficulty
	XPPerLesson             uint32
	TrackID                 uint16
	TrackLevel              uint8
	Prerequisite            domain.Address // zero when the course has none
	CompletionBonusXP       uint32
	CreatorRewardXP         uint32
	MinCompletionsForReward uint16
	TotalCompletions        uint32
	TotalEnrollments        uint32
	IsActive                bool
	CreatedAt               int64
	UpdatedAt               int64
}

// HasPrerequisite reports whether enrollment requires a completed
// prerequisite enrollment.
func (c *Course) HasPrerequisite() bool {
	return !c.Prerequisite.IsZero()
}

// Enrollment is the per-(course, learner) progress record. Its address is
// derived from the pair, which is what enforces at-most-one enrollment.
type Enrollment struct {
	Course          domain.Address
	Learner         domain.Identity
	EnrolledAt      int64
	LessonFlags     LessonFlags
	CompletedAt     OptionalTime
	CredentialAsset domain.Address // zero until a credential is issued
}

// Completed reports whether the enrollment has been finalized.
func (e *Enrollment) Completed() bool {
	return e.CompletedAt.Valid
}

// MinterRole authorizes a delegated identity to mint bounded XP amounts
// outside the course flow.
type MinterRole struct {
	Minter       domain.Identity
	Label        string
	MaxXPPerCall uint64
	IsActive     bool
	CreatedAt    int64
}

// AchievementType defines a mintable achievement and its reward.
type AchievementType struct {
	AchievementID string
	Name          string
	MetadataRef   domain.ContentRef
	MaxSupply     uint32 // 0 means uncapped
	IssuedCount   uint32
	XPReward      uint32
	IsActive      bool
	CreatedAt     int64
}

// SupplyExhausted reports whether another award would exceed the cap.
func (a *AchievementType) SupplyExhausted() bool {
	return a.MaxSupply > 0 && a.IssuedCount >= a.MaxSupply
}

// AchievementReceipt records one award per (achievement, recipient),
// mirroring the enrollment pattern to structurally prevent double-award.
type AchievementReceipt struct {
	AchievementType domain.Address
	Recipient       domain.Identity
	Asset           domain.Address
	AwardedAt       int64
}
