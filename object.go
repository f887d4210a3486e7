package scenepool

// State is the lifecycle state of a pooled instance.
type State int

const (
	// Released instances are idle in the pool. It is the initial state.
	Released State = iota
	// Got instances have been handed out by Generate and not yet released.
	Got
)

func (s State) String() string {
	switch s {
	case Released:
		return "released"
	case Got:
		return "got"
	default:
		return "unknown"
	}
}

// Releaser is implemented by the pool an instance was generated from.
type Releaser[T any] interface {
	Release(obj T)
}

// Resetter interface.
type Resetter interface {
	// ResetValues must restore every mutable field of the concrete type to its
	// default. It is called on every release and must be idempotent.
	ResetValues()
}

// Destroyer is implemented by instances able to destroy themselves.
// It is used when an instance that never came from a pool is released.
type Destroyer interface {
	Destroy()
}

// Pooled is the contract every instance handed out by a Pool must satisfy.
// Embedding Object[T, INFO] provides everything except ResetValues, which
// each concrete type has to implement.
type Pooled[T any, INFO any] interface {
	comparable
	Resetter

	ProvidePool(pool Releaser[T])
	ProvideInfo(info INFO)
	SetState(state State)
	State() State
	Generated()
}

// Object is the pooled facet embedded by concrete types.
//
//	type Bullet struct {
//		*scene.Node
//		scenepool.Object[*Bullet, *BulletInfo]
//
//		speed float64
//	}
//
//	func (b *Bullet) Generated()   { b.speed = b.Info().Speed }
//	func (b *Bullet) ResetValues() { b.speed = 0 }
type Object[T any, INFO any] struct {
	origin Releaser[T]
	info   INFO
	state  State
}

// ProvidePool records the pool the instance was generated from.
// The pool does not belong to the instance.
func (o *Object[T, INFO]) ProvidePool(pool Releaser[T]) {
	o.origin = pool
}

// ProvideInfo replaces the info payload.
func (o *Object[T, INFO]) ProvideInfo(info INFO) {
	o.info = info
}

// Info returns the payload given to the last Generate.
// It is only meaningful while the state is Got.
func (o *Object[T, INFO]) Info() INFO {
	return o.info
}

// State returns the current lifecycle state.
func (o *Object[T, INFO]) State() State {
	return o.state
}

// SetState is reserved to the owning pool.
func (o *Object[T, INFO]) SetState(state State) {
	o.state = state
}

// OriginPool returns the pool the instance was last generated from, if any.
func (o *Object[T, INFO]) OriginPool() Releaser[T] {
	return o.origin
}

// Generated is called once per acquisition, after the info was provided.
// Concrete types shadow it to set themselves up from Info.
func (o *Object[T, INFO]) Generated() {}

// Release gives self back to its origin pool. An instance that never came
// from a pool is reset and, when it implements Destroyer, destroyed.
func (o *Object[T, INFO]) Release(self T) {
	if o.origin != nil {
		o.origin.Release(self)

		return
	}

	if r, ok := any(self).(Resetter); ok {
		r.ResetValues()
	}

	if d, ok := any(self).(Destroyer); ok {
		d.Destroy()
	}
}
