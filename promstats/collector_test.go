package promstats_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/promstats"
	"github.com/peczenyj/scenepool/scene"
)

type shell struct {
	*scene.Node
	scenepool.Object[*shell, string]
}

func (*shell) ResetValues() {}

func TestCollectorWithPool(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := promstats.NewCollector(reg, "test")

	env := scene.NewEnvironment(scene.NewNode("root"), func() *shell {
		return &shell{Node: scene.NewNode("shell")}
	})

	pool, err := scenepool.New[*shell, string](env,
		scenepool.WithName("shells"),
		scenepool.WithInitialSize(1),
		scenepool.WithCollectionCheck(true),
		scenepool.WithRecorder(collector),
	)
	require.NoError(t, err)

	a := pool.Generate("a")
	pool.Generate("b")
	pool.Release(a)
	pool.Release(a)

	expected := `
# HELP test_pool_created_total Total number of instances created by the environment.
# TYPE test_pool_created_total counter
test_pool_created_total{pool="shells"} 2
# HELP test_pool_generated_total Total number of Generate calls.
# TYPE test_pool_generated_total counter
test_pool_generated_total{pool="shells"} 2
# HELP test_pool_released_total Total number of accepted releases.
# TYPE test_pool_released_total counter
test_pool_released_total{pool="shells"} 2
# HELP test_pool_violations_total Total number of lifecycle violations, labeled by kind.
# TYPE test_pool_violations_total counter
test_pool_violations_total{kind="double_release",pool="shells"} 1
# HELP test_pool_outstanding Number of instances handed out and not yet released.
# TYPE test_pool_outstanding gauge
test_pool_outstanding{pool="shells"} 1
# HELP test_pool_idle Number of instances waiting in the idle store.
# TYPE test_pool_idle gauge
test_pool_idle{pool="shells"} 1
`

	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_pool_created_total",
		"test_pool_generated_total",
		"test_pool_released_total",
		"test_pool_violations_total",
		"test_pool_outstanding",
		"test_pool_idle",
	)
	require.NoError(t, err)
}

func TestCollectorDiscarded(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := promstats.NewCollector(reg, "test")

	collector.ObserveDiscard("a")
	collector.ObserveDiscard("a")
	collector.ObserveDiscard("b")

	count, err := testutil.GatherAndCount(reg, "test_pool_discarded_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per pool")
}

func TestCollectorDefaultNamespace(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := promstats.NewCollector(reg, "")

	collector.ObserveCreate("p")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "scenepool_pool_created_total", families[0].GetName())
}

func TestCollectorRegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	promstats.NewCollector(reg, "dup")

	assert.Panics(t, func() {
		promstats.NewCollector(reg, "dup")
	})
}

func TestNilCollectorIsNoop(t *testing.T) {
	t.Parallel()

	var collector *promstats.Collector

	assert.NotPanics(t, func() {
		collector.ObserveCreate("p")
		collector.ObserveGenerate("p")
		collector.ObserveRelease("p")
		collector.ObserveDiscard("p")
		collector.ObserveViolation("p", scenepool.ViolationAliasedGet)
		collector.ObserveSizes("p", 1, 2)
	})
}
