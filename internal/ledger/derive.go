// Package ledger provides deterministic address derivation and the account
// store backing the transition engine. Any caller who knows an account's kind
// and natural keys can recompute its address; no directory or index exists.
package ledger

import (
	"crypto/sha256"

	"academy/pkg/domain"
)

// Kind tags the account type stored at an address. Each kind derives under its
// own namespace prefix, so two kinds can never share an address.
type Kind uint8

const (
	KindConfig Kind = iota + 1
	KindCourse
	KindEnrollment
	KindMinterRole
	KindAchievementType
	KindAchievementReceipt
)

var kindPrefixes = map[Kind]string{
	KindConfig:             "config",
	KindCourse:             "course",
	KindEnrollment:         "enrollment",
	KindMinterRole:         "minter",
	KindAchievementType:    "achievement",
	KindAchievementReceipt: "receipt",
}

func (k Kind) String() string {
	if p, ok := kindPrefixes[k]; ok {
		return p
	}
	return "unknown"
}

// Valid reports whether k is a known account kind.
func (k Kind) Valid() bool {
	_, ok := kindPrefixes[k]
	return ok
}

// Derive computes the storage address for (kind, seeds). The hash input is the
// kind's namespace prefix followed by each seed preceded by its length, so
// variable-length keys cannot collide across seed boundaries.
func Derive(kind Kind, seeds ...[]byte) domain.Address {
	h := sha256.New()
	h.Write([]byte(kindPrefixes[kind]))
	for _, seed := range seeds {
		h.Write([]byte{byte(len(seed))})
		h.Write(seed)
	}
	var addr domain.Address
	h.Sum(addr[:0])
	return addr
}

// ConfigAddress returns the address of the singleton Config account.
func ConfigAddress() domain.Address {
	return Derive(KindConfig)
}

// CourseAddress returns the address of the course with the given natural key.
func CourseAddress(courseID domain.CourseID) domain.Address {
	return Derive(KindCourse, courseID.Bytes())
}

// EnrollmentAddress returns the address of the (course, learner) enrollment.
// Deriving from the pair is what enforces at-most-one open enrollment.
func EnrollmentAddress(courseID domain.CourseID, learner domain.Identity) domain.Address {
	return Derive(KindEnrollment, courseID.Bytes(), learner.Bytes())
}

// MinterRoleAddress returns the address of a delegated minter's role account.
func MinterRoleAddress(minter domain.Identity) domain.Address {
	return Derive(KindMinterRole, minter.Bytes())
}

// AchievementTypeAddress returns the address of an achievement type.
func AchievementTypeAddress(achievementID string) domain.Address {
	return Derive(KindAchievementType, []byte(achievementID))
}

// AchievementReceiptAddress returns the address of the (achievement, recipient)
// receipt, which structurally prevents double-award.
func AchievementReceiptAddress(achievementID string, recipient domain.Identity) domain.Address {
	return Derive(KindAchievementReceipt, []byte(achievementID), recipient.Bytes())
}
