// Package service implements the transition engine: one atomic, role-gated
// state transition per exported method. Each transition validates the signer
// role, account linkage, and numeric invariants against freshly decoded
// account copies, and commits only after every guard has passed, so a typed
// failure always leaves the ledger untouched.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"academy/internal/academy/metrics"
	"academy/internal/academy/models"
	"academy/internal/ledger"
	"academy/internal/token"
	"academy/pkg/domain"
	psync "academy/pkg/platform/sync"
)

// AccountStore defines the persistence interface for academy accounts.
// Error Contract: all lookups return store.ErrNotFound when the account
// doesn't exist.
type AccountStore interface {
	Config(ctx context.Context) (*models.Config, error)
	PutConfig(ctx context.Context, cfg *models.Config) error

	Course(ctx context.Context, courseID domain.CourseID) (*models.Course, error)
	CourseByAddress(ctx context.Context, addr domain.Address) (*models.Course, error)
	PutCourse(ctx context.Context, course *models.Course) error
	ListCourses(ctx context.Context) ([]*models.Course, error)

	Enrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity) (*models.Enrollment, error)
	EnrollmentByAddress(ctx context.Context, addr domain.Address) (*models.Enrollment, error)
	PutEnrollment(ctx context.Context, courseID domain.CourseID, enr *models.Enrollment) error
	DeleteEnrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity) error

	MinterRole(ctx context.Context, minter domain.Identity) (*models.MinterRole, error)
	PutMinterRole(ctx context.Context, role *models.MinterRole) error

	AchievementType(ctx context.Context, achievementID string) (*models.AchievementType, error)
	PutAchievementType(ctx context.Context, typ *models.AchievementType) error

	Receipt(ctx context.Context, achievementID string, recipient domain.Identity) (*models.AchievementReceipt, error)
	PutReceipt(ctx context.Context, achievementID string, receipt *models.AchievementReceipt) error
}

// XPLedger is the fungible reward-token collaborator. Mints are gated by the
// mint authority (the Config address) and overflow-checked.
type XPLedger interface {
	Mint() domain.Address
	CanMintTo(recipient domain.Identity, amount uint64) error
	MintTo(authority domain.Address, recipient domain.Identity, amount uint64) error
	BurnFrom(authority domain.Address, owner domain.Identity, amount uint64) error
	Balance(owner domain.Identity) uint64
}

// AssetRegistry is the non-fungible asset collaborator backing credentials
// and achievement assets.
type AssetRegistry interface {
	Create(authority domain.Address, asset token.Asset) error
	Update(authority domain.Address, addr domain.Address, name, metadataURI string, attrs map[string]string, now int64) error
	Exists(addr domain.Address) bool
}

// Service is the transition engine.
type Service struct {
	store  AccountStore
	xp     XPLedger
	assets AssetRegistry

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	clock   func() time.Time
	locks   *psync.ShardedMutex
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock injects the ledger-observed wall clock. Tests pin it; production
// uses time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// New constructs the transition engine over an account store and the token
// collaborators.
func New(accounts AccountStore, xp XPLedger, assets AssetRegistry, opts ...Option) *Service {
	svc := &Service{
		store:  accounts,
		xp:     xp,
		assets: assets,
		tracer: otel.Tracer("academy/engine"),
		clock:  time.Now,
		locks:  psync.NewShardedMutex(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// mintAuthority is the identity under which the engine mints: the Config
// account's address holds the XP mint and asset authority.
func (s *Service) mintAuthority() domain.Address {
	return ledger.ConfigAddress()
}

func (s *Service) now() int64 {
	return s.clock().Unix()
}

// Read-only queries used by the relay's lookup endpoints.

// GetConfig returns the singleton config account.
func (s *Service) GetConfig(ctx context.Context) (*models.Config, error) {
	cfg, err := s.store.Config(ctx)
	if err != nil {
		return nil, notFound(err, ErrConfigMissing)
	}
	return cfg, nil
}

// GetCourse returns a course by its natural key.
func (s *Service) GetCourse(ctx context.Context, courseID domain.CourseID) (*models.Course, error) {
	course, err := s.store.Course(ctx, courseID)
	if err != nil {
		return nil, notFound(err, ErrCourseNotFound)
	}
	return course, nil
}

// ListCourses returns all courses in stable address order.
func (s *Service) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.store.ListCourses(ctx)
}

// GetEnrollment returns the (course, learner) enrollment.
func (s *Service) GetEnrollment(ctx context.Context, courseID domain.CourseID, learner domain.Identity) (*models.Enrollment, error) {
	enr, err := s.store.Enrollment(ctx, courseID, learner)
	if err != nil {
		return nil, notFound(err, ErrNotEnrolled)
	}
	return enr, nil
}

// XPBalance returns the owner's reward-token balance.
func (s *Service) XPBalance(owner domain.Identity) uint64 {
	return s.xp.Balance(owner)
}
