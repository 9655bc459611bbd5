// Package store wraps the raw ledger account store with typed accessors for
// the academy account kinds. Every read decodes a fresh copy, so callers can
// stage mutations and commit only on success.
package store

import (
	"context"
	"fmt"

	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/pkg/domain"
)

// ErrNotFound is re-exported so engine code matches one sentinel.
var ErrNotFound = ledger.ErrNotFound

// Store provides typed access to academy accounts.
type Store struct {
	accounts ledger.Store
}

// New wraps a ledger account store.
func New(accounts ledger.Store) *Store {
	return &Store{accounts: accounts}
}

func (s *Store) get(ctx context.Context, addr domain.Address, kind ledger.Kind, out interface{ UnmarshalBinary([]byte) error }) error {
	rec, err := s.accounts.Get(ctx, addr)
	if err != nil {
		return err
	}
	if rec.Kind != kind {
		return fmt.Errorf("account %s: expected kind %s, found %s", addr, kind, rec.Kind)
	}
	return out.UnmarshalBinary(rec.Data)
}

func (s *Store) put(ctx context.Context, addr domain.Address, kind ledger.Kind, in interface{ MarshalBinary() ([]byte, error) }) error {
	data, err := in.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode %s account: %w", kind, err)
	}
	return s.accounts.Put(ctx, ledger.Record{Address: addr, Kind: kind, Data: data})
}

// Config loads the singleton config account.
func (s *Store) Config(ctx context.Context) (*models.Config, error) {
	var cfg models.Config
	if err := s.get(ctx, ledger.ConfigAddress(), ledger.KindConfig, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PutConfig writes the singleton config account.
func (s *Store) PutConfig(ctx context.Context, cfg *models.Config) error {
	return s.put(ctx, ledger.ConfigAddress(), ledger.KindConfig, cfg)
}

// Course loads a course by natural key.
func (s *Store) Course(ctx context.Context, courseID domain.CourseID) (*models.Course, error) {
	return s.CourseByAddress(ctx, ledger.CourseAddress(courseID))
}

// CourseByAddress loads a course at a known address (prerequisite checks).
func (s *Store) CourseByAddress(ctx context.Context, addr domain.Address) (*models.Course, error) {
	var course models.Course
	if err := s.get(ctx, addr, ledger.KindCourse, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// PutCourse writes a course account at its derived address.
func (s *Store) PutCourse(ctx context.Context, course *models.Course) error {
	return s.put(ctx, ledger.CourseAddress(course.CourseID), ledger.KindCourse, course)
}

// ListCourses returns all course accounts in stable address order.
func (s *Store) ListCourses(ctx context.Context) ([]*models.Course, error) {
	recs, err := s.accounts.ListByKind(ctx, ledger.KindCourse)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Course, 0, len(recs))
	for _, rec := range recs {
		var course models.Course
		if err := course.UnmarshalBinary(rec.Data); err != nil {
			return nil, fmt.Errorf("decode course %s: %w", rec.Address, err)
		}
		out = append(out, &course)
	}
	return out, nil
}

// Enrollment loads the (course, learner) enrollment.
func (s *Store) Enrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity) (*models.Enrollment, error) {
	return s.EnrollmentByAddress(ctx, ledger.EnrollmentAddress(courseID, learner))
}

// EnrollmentByAddress loads an enrollment at a known address.
func (s *Store) EnrollmentByAddress(ctx context.Context, addr domain.Address) (*models.Enrollment, error) {
	var enr models.Enrollment
	if err := s.get(ctx, addr, ledger.KindEnrollment, &enr); err != nil {
		return nil, err
	}
	return &enr, nil
}

// PutEnrollment writes an enrollment at its derived address.
func (s *Store) PutEnrollment(ctx context.Context, courseID domain.CourseID, enr *models.Enrollment) error {
	return s.put(ctx, ledger.EnrollmentAddress(courseID, enr.Learner), ledger.KindEnrollment, enr)
}

// DeleteEnrollment destroys an enrollment account.
func (s *Store) DeleteEnrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity) error {
	return s.accounts.Delete(ctx, ledger.EnrollmentAddress(courseID, learner))
}

// MinterRole loads a delegated minter's role account.
func (s *Store) MinterRole(ctx context.Context, minter domain.Identity) (*models.MinterRole, error) {
	var role models.MinterRole
	if err := s.get(ctx, ledger.MinterRoleAddress(minter), ledger.KindMinterRole, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// PutMinterRole writes a minter role account.
func (s *Store) PutMinterRole(ctx context.Context, role *models.MinterRole) error {
	return s.put(ctx, ledger.MinterRoleAddress(role.Minter), ledger.KindMinterRole, role)
}

// AchievementType loads an achievement type by natural key.
func (s *Store) AchievementType(ctx context.Context, achievementID string) (*models.AchievementType, error) {
	var typ models.AchievementType
	if err := s.get(ctx, ledger.AchievementTypeAddress(achievementID), ledger.KindAchievementType, &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}

// PutAchievementType writes an achievement type account.
func (s *Store) PutAchievementType(ctx context.Context, typ *models.AchievementType) error {
	return s.put(ctx, ledger.AchievementTypeAddress(typ.AchievementID), ledger.KindAchievementType, typ)
}

// Receipt loads the (achievement, recipient) award receipt.
func (s *Store) Receipt(ctx context.Context, achievementID string, recipient domain.Identity) (*models.AchievementReceipt, error) {
	var receipt models.AchievementReceipt
	if err := s.get(ctx, ledger.AchievementReceiptAddress(achievementID, recipient), ledger.KindAchievementReceipt, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// PutReceipt writes an award receipt.
func (s *Store) PutReceipt(ctx context.Context, achievementID string, receipt *models.AchievementReceipt) error {
	return s.put(ctx, ledger.AchievementReceiptAddress(achievementID, receipt.Recipient), ledger.KindAchievementReceipt, receipt)
}
