package config_test

import (
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/config"
	"github.com/peczenyj/scenepool/scene"
)

func TestLoadSimulation(t *testing.T) {
	t.Setenv("SCENEPOOL_TEST_POOL_NAME", "sparks")

	cfg, err := config.LoadSimulation(filepath.Join("testdata", "simulation.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.PoolConfig{
		Name:                   "sparks",
		CollectionCheck:        true,
		InitialSize:            4,
		MaxSize:                16,
		GetContainer:           "live",
		FixedGetContainer:      true,
		ReleasedContainer:      "bin",
		FixedReleasedContainer: false,
	}, cfg.Pool)

	assert.Equal(t, 60, cfg.Frames)
	assert.Equal(t, 3, cfg.SpawnPerFrame)
	assert.Equal(t, 5, cfg.Lifetime)
	assert.InEpsilon(t, 2.5, cfg.Speed, 1e-9)
	assert.Equal(t, "scenepool", cfg.MetricsNamespace, "default kept")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths, "default kept")
}

func TestLoadSimulationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		label string
		file  string
		msg   string
	}{
		{label: "missing file", file: "missing.yaml", msg: "failed to read config file"},
		{label: "malformed yaml", file: "malformed.yaml", msg: "failed to parse YAML"},
		{label: "invalid values", file: "invalid.yaml", msg: "max_size"},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.label, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadSimulation(filepath.Join("testdata", testCase.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.msg)
		})
	}
}

func TestParseSubstitutesEnvironment(t *testing.T) {
	t.Setenv("SCENEPOOL_TEST_MAX", "7")
	t.Setenv("SCENEPOOL_TEST_LOOP", "${SCENEPOOL_TEST_LOOP}")

	var cfg config.PoolConfig

	err := config.Parse([]byte("name: ${SCENEPOOL_TEST_LOOP}\nmax_size: ${SCENEPOOL_TEST_MAX}\ninitial_size: ${SCENEPOOL_TEST_UNSET}0\n"), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "${SCENEPOOL_TEST_LOOP}", cfg.Name, "values are not expanded twice")
	assert.Equal(t, 7, cfg.MaxSize)
	assert.Zero(t, cfg.InitialSize)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.yaml")
	want := config.DefaultSimulation()

	require.NoError(t, config.Save(path, want))

	got, err := config.LoadSimulation(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSimulationConfigJSONKeys(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(config.DefaultSimulation())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"log":{"level":"info","development":false,"encoding":"json","output_paths":["stderr"]}`)
	assert.Contains(t, string(data), `"spawn_per_frame":2`)
}

func TestPoolConfigValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		label  string
		mutate func(*config.PoolConfig)
		valid  bool
	}{
		{label: "defaults", mutate: func(*config.PoolConfig) {}, valid: true},
		{label: "initial above max is accepted", mutate: func(c *config.PoolConfig) { c.InitialSize = 500 }, valid: true},
		{label: "empty name", mutate: func(c *config.PoolConfig) { c.Name = "" }},
		{label: "negative initial", mutate: func(c *config.PoolConfig) { c.InitialSize = -1 }},
		{label: "zero max", mutate: func(c *config.PoolConfig) { c.MaxSize = 0 }},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.label, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultPool()
			testCase.mutate(&cfg)

			err := cfg.Validate()
			if testCase.valid {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestSimulationConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultSimulation()
	require.NoError(t, cfg.Validate())

	cfg.Lifetime = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.DefaultSimulation()
	cfg.SpawnPerFrame = -2
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.DefaultSimulation()
	cfg.Frames = -1
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

type bolt struct {
	*scene.Node
	scenepool.Object[*bolt, int]
}

func (*bolt) ResetValues() {}

func TestPoolConfigOptions(t *testing.T) {
	t.Parallel()

	live := scene.NewNode("live")
	bin := scene.NewNode("bin")
	containers := map[string]scenepool.Container{"live": live, "bin": bin}

	resolve := func(name string) scenepool.Container { return containers[name] }

	cfg := config.DefaultPool()
	cfg.Name = "bolts"
	cfg.InitialSize = 2
	cfg.MaxSize = 3
	cfg.CollectionCheck = true
	cfg.GetContainer = "live"
	cfg.ReleasedContainer = "bin"

	opts, err := cfg.Options(resolve)
	require.NoError(t, err)

	env := scene.NewEnvironment(scene.NewNode("root"), func() *bolt {
		return &bolt{Node: scene.NewNode("bolt")}
	})

	pool, err := scenepool.New[*bolt, int](env, opts...)
	require.NoError(t, err)

	assert.Equal(t, scenepool.Stats{
		Name:            "bolts",
		CountAll:        2,
		CountInactive:   2,
		MaxSize:         3,
		CollectionCheck: true,
	}, pool.Stats())
	assert.Len(t, bin.Children(), 2)

	b := pool.Generate(1)
	assert.Same(t, live, b.Parent())
}

func TestPoolConfigOptionsErrors(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultPool()
	cfg.GetContainer = "nowhere"

	_, err := cfg.Options(func(string) scenepool.Container { return nil })
	require.ErrorIs(t, err, config.ErrUnknownContainer)

	_, err = cfg.Options(nil)
	require.ErrorIs(t, err, config.ErrUnknownContainer)

	cfg = config.DefaultPool()
	cfg.MaxSize = -1

	_, err = cfg.Options(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
