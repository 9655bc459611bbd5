package models

import (
	"math/bits"

	dErrors "academy/pkg/domain-errors"
)

// Difficulty is the course difficulty tier.
type Difficulty uint8

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
)

func (d Difficulty) Valid() bool {
	return d >= DifficultyBeginner && d <= DifficultyAdvanced
}

// LessonFlagWords is the fixed width of the lesson bitset in 64-bit words.
// 256 bits covers any supported lesson count (lesson counts are uint8).
const LessonFlagWords = 4

// LessonCapacity is the number of lesson slots the bitset can track.
const LessonCapacity = LessonFlagWords * 64

// LessonFlags is a fixed-width bitset, one bit per lesson. Bits are set on
// completion and never cleared.
type LessonFlags [LessonFlagWords]uint64

// IsSet reports whether lesson i is recorded as completed.
// Out-of-range indexes report false.
func (f LessonFlags) IsSet(i int) bool {
	if i < 0 || i >= LessonCapacity {
		return false
	}
	return f[i/64]&(1<<(uint(i)%64)) != 0
}

// Set marks lesson i completed.
func (f *LessonFlags) Set(i int) error {
	if i < 0 || i >= LessonCapacity {
		return dErrors.New(dErrors.CodeValidation, "lesson index out of bitset capacity")
	}
	f[i/64] |= 1 << (uint(i) % 64)
	return nil
}

// Count returns the number of completed lessons.
func (f LessonFlags) Count() int {
	n := 0
	for _, w := range f {
		n += bits.OnesCount64(w)
	}
	return n
}

// AllSet reports whether the first lessonCount bits are all set.
func (f LessonFlags) AllSet(lessonCount int) bool {
	return f.Count() == lessonCount
}

// OptionalTime is an explicit "unset vs set" unix timestamp. A bare zero
// cannot stand in for "never": the distinction is part of the ledger state.
type OptionalTime struct {
	Valid bool
	Unix  int64
}

// SomeTime wraps a unix timestamp as a present OptionalTime.
func SomeTime(unix int64) OptionalTime {
	return OptionalTime{Valid: true, Unix: unix}
}
