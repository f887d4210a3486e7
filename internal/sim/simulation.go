package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/scene"
)

// Params are the spawn parameters of a Simulation.
type Params struct {
	SpawnPerFrame int
	Lifetime      int
	Speed         float64
}

// Simulation spawns projectiles every frame and lets them release themselves
// once expired.
type Simulation struct {
	pool   *scenepool.Pool[*Projectile, *ProjectileInfo]
	params Params
	logger *zap.Logger

	frame   int
	spawned int
	expired int
}

// New returns a simulation drawing projectiles from pool.
func New(pool *scenepool.Pool[*Projectile, *ProjectileInfo], params Params, logger *zap.Logger) (*Simulation, error) {
	if pool == nil {
		return nil, fmt.Errorf("sim: %w", scenepool.ErrNotInitialized)
	}

	if params.Lifetime <= 0 {
		return nil, fmt.Errorf("sim: lifetime must be > 0, got %d", params.Lifetime)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Simulation{
		pool:   pool,
		params: params,
		logger: logger.Named("sim"),
	}, nil
}

// Step runs one frame: spawns, then advances every live projectile.
// A projectile spawned this frame moves once before the frame ends.
func (s *Simulation) Step() {
	s.frame++

	for i := 0; i < s.params.SpawnPerFrame; i++ {
		// alternate directions so consecutive shots diverge
		dir := float64(1 - 2*(s.spawned%2))

		s.pool.Generate(&ProjectileInfo{
			Velocity: scene.Vec3{X: s.params.Speed * dir, Z: s.params.Speed},
			Lifetime: s.params.Lifetime,
		})
		s.spawned++
	}

	// projectiles release themselves during the walk
	for _, p := range s.pool.Outstanding() {
		if p.State() != scenepool.Got {
			continue
		}

		if p.Advance() {
			p.Release(p)
			s.expired++
		}
	}

	s.logger.Debug("frame done",
		zap.Int("frame", s.frame),
		zap.Int("live", s.pool.Len()),
	)
}

// Run runs frames steps, releases every remaining projectile and returns
// the final pool counters.
func (s *Simulation) Run(frames int) scenepool.Stats {
	for i := 0; i < frames; i++ {
		s.Step()
	}

	live := s.pool.Len()
	s.pool.ReleaseAll()

	stats := s.pool.Stats()

	s.logger.Info("simulation finished",
		zap.Int("frames", s.frame),
		zap.Int("spawned", s.spawned),
		zap.Int("expired", s.expired),
		zap.Int("released_at_end", live),
		zap.Int("instances", stats.CountAll),
	)

	return stats
}

// Frame is the number of frames run so far.
func (s *Simulation) Frame() int { return s.frame }

// Spawned is the number of projectiles generated so far.
func (s *Simulation) Spawned() int { return s.spawned }

// Expired is the number of projectiles that released themselves.
func (s *Simulation) Expired() int { return s.expired }
