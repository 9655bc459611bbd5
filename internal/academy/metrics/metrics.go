package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for ledger transitions.
type Metrics struct {
	CoursesCreated      prometheus.Counter
	Enrollments         prometheus.Counter
	LessonsCompleted    prometheus.Counter
	CoursesFinalized    prometheus.Counter
	EnrollmentsClosed   prometheus.Counter
	CredentialsIssued   prometheus.Counter
	AchievementsAwarded prometheus.Counter

	XPMinted           *prometheus.CounterVec
	TransitionFailures *prometheus.CounterVec
	TransitionDuration *prometheus.HistogramVec
}

// New registers and returns transition metrics collectors.
func New() *Metrics {
	return &Metrics{
		CoursesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_courses_created_total",
			Help: "Total number of courses created",
		}),
		Enrollments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_enrollments_total",
			Help: "Total number of enrollments created",
		}),
		LessonsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_lessons_completed_total",
			Help: "Total number of lessons recorded as completed",
		}),
		CoursesFinalized: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_courses_finalized_total",
			Help: "Total number of course finalizations",
		}),
		EnrollmentsClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_enrollments_closed_total",
			Help: "Total number of enrollments closed",
		}),
		CredentialsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_credentials_issued_total",
			Help: "Total number of credential issuances and upgrades",
		}),
		AchievementsAwarded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "academy_achievements_awarded_total",
			Help: "Total number of achievements awarded",
		}),
		XPMinted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_xp_minted_total",
			Help: "Total XP minted, by reason",
		}, []string{"reason"}),
		TransitionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_transition_failures_total",
			Help: "Total failed transitions, by transition and error code",
		}, []string{"transition", "code"}),
		TransitionDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "academy_transition_duration_ms",
			Help:    "Transition execution time in milliseconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100},
		}, []string{"transition"}),
	}
}
