package models

import (
	"encoding/binary"
	"fmt"

	"academy/pkg/domain"
)

// Fixed binary layouts. Every account encodes to a fixed-size big-endian
// buffer: 32-byte keys raw, bounded strings as a length byte plus a 32-byte
// capacity field, optional timestamps as a flag byte plus 8 bytes. Fixed
// sizes bound storage cost and keep derivation-addressed records rewritable
// in place.

const (
	// MaxLabelLen bounds minter labels and achievement names/ids.
	MaxLabelLen = 32

	boundedStrSize  = 1 + MaxLabelLen
	optionalTimeLen = 1 + 8

	ConfigSize          = 32 + 32 + 32 + 8
	CourseSize          = boundedStrSize + 32 + 32 + 32 + 2 + 1 + 1 + 4 + 2 + 1 + 32 + 4 + 4 + 2 + 4 + 4 + 1 + 8 + 8 + 8
	EnrollmentSize      = 32 + 32 + 8 + 8*LessonFlagWords + optionalTimeLen + 32 + 4
	MinterRoleSize      = 32 + boundedStrSize + 8 + 1 + 8
	AchievementTypeSize = boundedStrSize + boundedStrSize + 32 + 4 + 4 + 4 + 1 + 8
	ReceiptSize         = 32 + 32 + 32 + 8
)

type layoutBuf struct {
	data []byte
	off  int
	err  error
}

func (b *layoutBuf) putBytes(p []byte) {
	copy(b.data[b.off:], p)
	b.off += len(p)
}

func (b *layoutBuf) putBounded(s string) {
	b.data[b.off] = byte(len(s))
	copy(b.data[b.off+1:], s)
	b.off += boundedStrSize
}

func (b *layoutBuf) putU8(v uint8) { b.data[b.off] = v; b.off++ }

func (b *layoutBuf) putBool(v bool) {
	if v {
		b.data[b.off] = 1
	}
	b.off++
}
func (b *layoutBuf) putU16(v uint16) { binary.BigEndian.PutUint16(b.data[b.off:], v); b.off += 2 }
func (b *layoutBuf) putU32(v uint32) { binary.BigEndian.PutUint32(b.data[b.off:], v); b.off += 4 }
func (b *layoutBuf) putU64(v uint64) { binary.BigEndian.PutUint64(b.data[b.off:], v); b.off += 8 }
func (b *layoutBuf) putI64(v int64)  { b.putU64(uint64(v)) }

func (b *layoutBuf) putOptionalTime(t OptionalTime) {
	b.putBool(t.Valid)
	b.putI64(t.Unix)
}

func (b *layoutBuf) take(n int) []byte {
	p := b.data[b.off : b.off+n]
	b.off += n
	return p
}

func (b *layoutBuf) bounded() string {
	n := int(b.data[b.off])
	if n > MaxLabelLen {
		b.err = fmt.Errorf("bounded string length %d exceeds capacity", n)
		n = 0
	}
	s := string(b.data[b.off+1 : b.off+1+n])
	b.off += boundedStrSize
	return s
}

func (b *layoutBuf) u8() uint8     { v := b.data[b.off]; b.off++; return v }
func (b *layoutBuf) boolean() bool { return b.u8() != 0 }
func (b *layoutBuf) u16() uint16   { v := binary.BigEndian.Uint16(b.data[b.off:]); b.off += 2; return v }
func (b *layoutBuf) u32() uint32   { v := binary.BigEndian.Uint32(b.data[b.off:]); b.off += 4; return v }
func (b *layoutBuf) u64() uint64   { v := binary.BigEndian.Uint64(b.data[b.off:]); b.off += 8; return v }
func (b *layoutBuf) i64() int64    { return int64(b.u64()) }

func (b *layoutBuf) optionalTime() OptionalTime {
	valid := b.boolean()
	unix := b.i64()
	if !valid {
		return OptionalTime{}
	}
	return OptionalTime{Valid: true, Unix: unix}
}

func (b *layoutBuf) identity() domain.Identity {
	var id domain.Identity
	copy(id[:], b.take(32))
	return id
}

func (b *layoutBuf) address() domain.Address {
	var a domain.Address
	copy(a[:], b.take(32))
	return a
}

func (b *layoutBuf) contentRef() domain.ContentRef {
	var r domain.ContentRef
	copy(r[:], b.take(32))
	return r
}

func decodeBuf(data []byte, want int, kind string) (*layoutBuf, error) {
	if len(data) != want {
		return nil, fmt.Errorf("decode %s: got %d bytes, want %d", kind, len(data), want)
	}
	return &layoutBuf{data: data}, nil
}

// MarshalBinary encodes the config account.
func (c *Config) MarshalBinary() ([]byte, error) {
	b := &layoutBuf{data: make([]byte, ConfigSize)}
	b.putBytes(c.Authority.Bytes())
	b.putBytes(c.BackendSigner.Bytes())
	b.putBytes(c.XPMint.Bytes())
	b.off += 8 // reserved
	return b.data, nil
}

// UnmarshalBinary decodes the config account.
func (c *Config) UnmarshalBinary(data []byte) error {
	b, err := decodeBuf(data, ConfigSize, "config")
	if err != nil {
		return err
	}
	c.Authority = b.identity()
	c.BackendSigner = b.identity()
	c.XPMint = b.address()
	return nil
}

// MarshalBinary encodes the course account.
func (c *Course) MarshalBinary() ([]byte, error) {
	if len(c.CourseID) > domain.MaxCourseIDLen {
		return nil, fmt.Errorf("course ID %q exceeds layout capacity", c.CourseID)
	}
	b := &layoutBuf{data: make([]byte, CourseSize)}
	b.putBounded(string(c.CourseID))
	b.putBytes(c.Creator.Bytes())
	b.putBytes(c.Authority.Bytes())
	b.putBytes(c.ContentRef[:])
	b.putU16(c.Version)
	b.putU8(c.LessonCount)
	b.putU8(uint8(c.Difficulty))
	b.putU32(c.XPPerLesson)
	b.putU16(c.TrackID)
	b.putU8(c.TrackLevel)
	b.putBytes(c.Prerequisite.Bytes())
	b.putU32(c.CompletionBonusXP)
	b.putU32(c.CreatorRewardXP)
	b.putU16(c.MinCompletionsForReward)
	b.putU32(c.TotalCompletions)
	b.putU32(c.TotalEnrollments)
	b.putBool(c.IsActive)
	b.putI64(c.CreatedAt)
	b.putI64(c.UpdatedAt)
	b.off += 8 // reserved
	return b.data, nil
}

// UnmarshalBinary decodes the course account.
func (c *Course) UnmarshalBinary(data []byte) error {
	b, err := decodeBuf(data, CourseSize, "course")
	if err != nil {
		return err
	}
	c.CourseID = domain.CourseID(b.bounded())
	c.Creator = b.identity()
	c.Authority = b.identity()
	c.ContentRef = b.contentRef()
	c.Version = b.u16()
	c.LessonCount = b.u8()
	c.Difficulty = Difficulty(b.u8())
	c.XPPerLesson = b.u32()
	c.TrackID = b.u16()
	c.TrackLevel = b.u8()
	c.Prerequisite = b.address()
	c.CompletionBonusXP = b.u32()
	c.CreatorRewardXP = b.u32()
	c.MinCompletionsForReward = b.u16()
	c.TotalCompletions = b.u32()
	c.TotalEnrollments = b.u32()
	c.IsActive = b.boolean()
	c.CreatedAt = b.i64()
	c.UpdatedAt = b.i64()
	return b.err
}

// MarshalBinary encodes the enrollment account.
func (e *Enrollment) MarshalBinary() ([]byte, error) {
	b := &layoutBuf{data: make([]byte, EnrollmentSize)}
	b.putBytes(e.Course.Bytes())
	b.putBytes(e.Learner.Bytes())
	b.putI64(e.EnrolledAt)
	for _, w := range e.LessonFlags {
		b.putU64(w)
	}
	b.putOptionalTime(e.CompletedAt)
	b.putBytes(e.CredentialAsset.Bytes())
	b.off += 4 // reserved
	return b.data, nil
}

// UnmarshalBinary decodes the enrollment account.
func (e *Enrollment) UnmarshalBinary(data []byte) error {
	b, err := decodeBuf(data, EnrollmentSize, "enrollment")
	if err != nil {
		return err
	}
	e.Course = b.address()
	e.Learner = b.identity()
	e.EnrolledAt = b.i64()
	for i := range e.LessonFlags {
		e.LessonFlags[i] = b.u64()
	}
	e.CompletedAt = b.optionalTime()
	e.CredentialAsset = b.address()
	return nil
}

// MarshalBinary encodes the minter role account.
func (m *MinterRole) MarshalBinary() ([]byte, error) {
	if len(m.Label) > MaxLabelLen {
		return nil, fmt.Errorf("minter label %q exceeds layout capacity", m.Label)
	}
	b := &layoutBuf{data: make([]byte, MinterRoleSize)}
	b.putBytes(m.Minter.Bytes())
	b.putBounded(m.Label)
	b.putU64(m.MaxXPPerCall)
	b.putBool(m.IsActive)
	b.putI64(m.CreatedAt)
	return b.data, nil
}

// UnmarshalBinary decodes the minter role account.
func (m *MinterRole) UnmarshalBinary(data []byte) error {
	b, err := decodeBuf(data, MinterRoleSize, "minter role")
	if err != nil {
		return err
	}
	m.Minter = b.identity()
	m.Label = b.bounded()
	m.MaxXPPerCall = b.u64()
	m.IsActive = b.boolean()
	m.CreatedAt = b.i64()
	return b.err
}

// MarshalBinary encodes the achievement type account.
func (a *AchievementType) MarshalBinary() ([]byte, error) {
	if len(a.AchievementID) > MaxLabelLen || len(a.Name) > MaxLabelLen {
		return nil, fmt.Errorf("achievement %q: identifier exceeds layout capacity", a.AchievementID)
	}
	b := &layoutBuf{data: make([]byte, AchievementTypeSize)}
	b.putBounded(a.AchievementID)
	b.putBounded(a.Name)
	b.putBytes(a.MetadataRef[:])
	b.putU32(a.MaxSupply)
	b.putU32(a.IssuedCount)
	b.putU32(a.XPReward)
	b.putBool(a.IsActive)
	b.putI64(a.CreatedAt)
	return b.data, nil
}

// UnmarshalBinary decodes the achievement type account.
func (a *AchievementType) UnmarshalBinary(data []byte) error {
	b, err := decodeBuf(data, AchievementTypeSize, "achievement type")
	if err != nil {
		return err
	}
	a.AchievementID = b.bounded()
	a.Name = b.bounded()
	a.MetadataRef = b.contentRef()
	a.MaxSupply = b.u32()
	a.IssuedCount = b.u32()
	a.XPReward = b.u32()
	a.IsActive = b.boolean()
	a.CreatedAt = b.i64()
	return b.err
}

// MarshalBinary encodes the achievement receipt account.
func (r *AchievementReceipt) MarshalBinary() ([]byte, error) {
	b := &layoutBuf{data: make([]byte, ReceiptSize)}
	b.putBytes(r.AchievementType.Bytes())
	b.putBytes(r.Recipient.Bytes())
	b.putBytes(r.Asset.Bytes())
	b.putI64(r.AwardedAt)
	return b.data, nil
}

// UnmarshalBinary decodes the achievement receipt account.
func (r *AchievementReceipt) UnmarshalBinary(data []byte) error {
	b, err := decodeBuf(data, ReceiptSize, "achievement receipt")
	if err != nil {
		return err
	}
	r.AchievementType = b.address()
	r.Recipient = b.identity()
	r.Asset = b.address()
	r.AwardedAt = b.i64()
	return nil
}
