// Package sim runs a frame-driven projectile simulation on top of a
// scenepool.Pool. It is the workload of the scenepool command.
package sim

import (
	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/scene"
)

// ProjectileInfo is the per-shot payload.
type ProjectileInfo struct {
	Velocity scene.Vec3
	Lifetime int // in frames
}

// Projectile is a pooled scene node that moves until its lifetime expires.
type Projectile struct {
	*scene.Node
	scenepool.Object[*Projectile, *ProjectileInfo]

	velocity scene.Vec3
	age      int
	lifetime int
	hits     int
}

// NewProjectile is the prefab of the simulation.
func NewProjectile() *Projectile {
	return &Projectile{Node: scene.NewNode("projectile")}
}

// Generated copies the shot parameters from the info.
func (p *Projectile) Generated() {
	info := p.Info()

	p.velocity = info.Velocity
	p.lifetime = info.Lifetime
}

// ResetValues implements scenepool.Resetter.
func (p *Projectile) ResetValues() {
	p.velocity = scene.Zero
	p.age = 0
	p.lifetime = 0
	p.hits = 0
}

// Advance moves the projectile one frame and reports whether it expired.
func (p *Projectile) Advance() bool {
	p.SetLocalPosition(p.LocalPosition().Add(p.velocity))
	p.age++

	return p.age >= p.lifetime
}

// Hit records a collision.
func (p *Projectile) Hit() { p.hits++ }

// Velocity is the distance covered per frame.
func (p *Projectile) Velocity() scene.Vec3 { return p.velocity }

// Age is the number of frames since the projectile was generated.
func (p *Projectile) Age() int { return p.age }

// Lifetime is the number of frames the projectile lives.
func (p *Projectile) Lifetime() int { return p.lifetime }

// Hits is the number of recorded collisions.
func (p *Projectile) Hits() int { return p.hits }
