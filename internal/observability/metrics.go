// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "more_recipes_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "more_recipes_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RecipeEvents counts recipe lifecycle events.
	RecipeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "more_recipes_recipe_events_total",
		Help: "Total recipe events by type",
	}, []string{"event"})

	// VoteEvents counts vote requests by direction and outcome.
	VoteEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "more_recipes_vote_events_total",
		Help: "Total vote requests by direction and outcome",
	}, []string{"direction", "outcome"})

	// AuthEvents counts account and session events.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "more_recipes_auth_events_total",
		Help: "Total authentication events by type",
	}, []string{"event"})
)

// Recipe event labels.
const (
	RecipeCreated  = "created"
	RecipeUpdated  = "updated"
	RecipeDeleted  = "deleted"
	RecipeReviewed = "reviewed"
)

// Auth event labels.
const (
	AuthSignup       = "signup"
	AuthSignin       = "signin"
	AuthSigninFailed = "signin_failed"
	AuthSignout      = "signout"
)

const queryStartKey = "observability:query_start"

// RegisterGormCallbacks records the latency of every GORM statement in
// DatabaseQueryLatency.
func RegisterGormCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before("observability:before_"+h.operation, startQueryTimer); err != nil {
			return err
		}
		if err := h.after("observability:after_"+h.operation, observeQuery(h.operation)); err != nil {
			return err
		}
	}
	return nil
}

func startQueryTimer(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func observeQuery(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
