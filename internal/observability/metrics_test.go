package observability

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type probe struct {
	ID   uint
	Name string
}

// seriesWithLabel counts gathered series of family carrying label=value.
func seriesWithLabel(t *testing.T, family, label, value string) int {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	n := 0
	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					n++
				}
			}
		}
	}
	return n
}

func TestRegisterGormCallbacks_ObservesQueries(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, RegisterGormCallbacks(db))
	require.NoError(t, db.AutoMigrate(&probe{}))

	require.NoError(t, db.Create(&probe{Name: "a"}).Error)
	var got []probe
	require.NoError(t, db.Find(&got).Error)

	assert.Len(t, got, 1)
	assert.GreaterOrEqual(t, seriesWithLabel(t, "more_recipes_database_query_latency_seconds", "table", "probes"), 2)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "more-recipes-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
