package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/config"
	"github.com/peczenyj/scenepool/scene"
)

// World is a scene prepared for a simulation.
type World struct {
	Root *scene.Node
	Env  *scene.Environment[*Projectile]
	Pool *scenepool.Pool[*Projectile, *ProjectileInfo]
	Sim  *Simulation
}

// Build creates the scene, the pool and the simulation described by cfg.
// Containers named in the pool settings are created as children of the root.
func Build(cfg config.SimulationConfig, logger *zap.Logger, recorder scenepool.Recorder) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	root := scene.NewNode("world")

	resolve := func(name string) scenepool.Container {
		if n := root.Find(name); n != nil {
			return n
		}

		n := scene.NewNode(name)
		n.SetParent(root)

		return n
	}

	opts, err := cfg.Pool.Options(resolve)
	if err != nil {
		return nil, err
	}

	opts = append(opts,
		scenepool.WithLogger(logger),
		scenepool.WithRecorder(recorder),
	)

	env := scene.NewEnvironment(root, NewProjectile)

	pool, err := scenepool.New[*Projectile, *ProjectileInfo](env, opts...)
	if err != nil {
		return nil, fmt.Errorf("sim: build pool: %w", err)
	}

	s, err := New(pool, Params{
		SpawnPerFrame: cfg.SpawnPerFrame,
		Lifetime:      cfg.Lifetime,
		Speed:         cfg.Speed,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &World{
		Root: root,
		Env:  env,
		Pool: pool,
		Sim:  s,
	}, nil
}
