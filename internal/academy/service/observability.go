package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"academy/internal/ledger"
	dErrors "academy/pkg/domain-errors"
)

// Observability helpers for logging, tracing, and metrics. The event names
// mirror the ledger's emitted events (CourseCreated, Enrolled, ...).

// transition wraps a handler with a span, duration metric, and failure
// counter, and serializes on the given account address, modeling the host's
// write-conflict detection.
func (s *Service) transition(ctx context.Context, name string, lock ledger.Kind, addr [32]byte, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "academy."+name,
		trace.WithAttributes(attribute.String("transition", name)))
	defer span.End()
	start := time.Now()

	s.locks.Lock(addr)
	err := fn(ctx)
	s.locks.Unlock(addr)

	if s.metrics != nil {
		s.metrics.TransitionDuration.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
		if err != nil {
			s.metrics.TransitionFailures.WithLabelValues(name, errorCode(err)).Inc()
		}
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.WarnContext(ctx, "transition rejected",
			"transition", name,
			"kind", lock.String(),
			"error", err,
		)
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// logEvent emits the transition's ledger event as a structured log line.
func (s *Service) logEvent(ctx context.Context, event string, attrs ...any) {
	args := append(attrs, "event", event)
	s.logger.InfoContext(ctx, event, args...)
}

func (s *Service) countXP(reason string, amount uint64) {
	if s.metrics != nil {
		s.metrics.XPMinted.WithLabelValues(reason).Add(float64(amount))
	}
}

func (s *Service) countCourseCreated() {
	if s.metrics != nil {
		s.metrics.CoursesCreated.Inc()
	}
}

func (s *Service) countEnrollment() {
	if s.metrics != nil {
		s.metrics.Enrollments.Inc()
	}
}

func (s *Service) countLessonCompleted() {
	if s.metrics != nil {
		s.metrics.LessonsCompleted.Inc()
	}
}

func (s *Service) countFinalized() {
	if s.metrics != nil {
		s.metrics.CoursesFinalized.Inc()
	}
}

func (s *Service) countEnrollmentClosed() {
	if s.metrics != nil {
		s.metrics.EnrollmentsClosed.Inc()
	}
}

func (s *Service) countCredentialIssued() {
	if s.metrics != nil {
		s.metrics.CredentialsIssued.Inc()
	}
}

func (s *Service) countAchievementAwarded() {
	if s.metrics != nil {
		s.metrics.AchievementsAwarded.Inc()
	}
}

func errorCode(err error) string {
	var dErr *dErrors.Error
	if errors.As(err, &dErr) {
		return string(dErr.Code)
	}
	return string(dErrors.CodeInternal)
}

// notFound maps a store-level not-found onto the transition's typed outcome,
// passing every other error through untouched.
func notFound(err, sentinel error) error {
	if errors.Is(err, ledger.ErrNotFound) {
		return sentinel
	}
	return err
}
