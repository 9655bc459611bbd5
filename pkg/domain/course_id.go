package domain

import (
	"encoding/hex"

	dErrors "academy/pkg/domain-errors"
)

// MaxCourseIDLen bounds the course natural key so course accounts keep a
// fixed-capacity layout.
const MaxCourseIDLen = 32

// CourseID is the unique natural key of a course, 1-32 bytes.
type CourseID string

// ParseCourseID validates the length bounds on a raw course identifier.
func ParseCourseID(s string) (CourseID, error) {
	if len(s) == 0 {
		return "", dErrors.New(dErrors.CodeValidation, "course ID is empty")
	}
	if len(s) > MaxCourseIDLen {
		return "", dErrors.New(dErrors.CodeValidation, "course ID exceeds max length")
	}
	return CourseID(s), nil
}

func (c CourseID) String() string { return string(c) }

func (c CourseID) Bytes() []byte { return []byte(c) }

// ContentRef is a 32-byte content-addressed pointer to off-ledger course
// content. The ledger never interprets it.
type ContentRef [32]byte

// ZeroContentRef is the all-zero content reference.
var ZeroContentRef ContentRef

// ParseContentRef parses a hex-encoded 32-byte content reference.
func ParseContentRef(s string) (ContentRef, error) {
	if s == "" {
		return ContentRef{}, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return ContentRef{}, dErrors.New(dErrors.CodeBadRequest, "content reference must be 32 hex-encoded bytes")
	}
	var ref ContentRef
	copy(ref[:], raw)
	return ref, nil
}

func (r ContentRef) String() string { return hex.EncodeToString(r[:]) }

func (r ContentRef) IsZero() bool { return r == ZeroContentRef }
