package scenepool

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/peczenyj/scenepool/store"
)

var (
	// ErrNilEnvironment indicates New was called without an environment.
	ErrNilEnvironment = errors.New("scenepool: environment is required")
	// ErrInvalidSize indicates a negative initial size or a non-positive max size.
	ErrInvalidSize = errors.New("scenepool: invalid pool size")
	// ErrHookType indicates a generated hook registered for another type.
	ErrHookType = errors.New("scenepool: generated hook does not match the pool instance type")
	// ErrNotInitialized is the panic value of operations on a Pool not built by New.
	ErrNotInitialized = errors.New("scenepool: pool used before initialization")
	// ErrNotOutstanding is logged when the collection check rejects the
	// release of an instance that is not in state Got.
	ErrNotOutstanding = errors.New("scenepool: instance is not outstanding")
)

// Pool recycles instances of T, handing each acquisition a fresh INFO.
//
// Every instance returned by Generate is in state Got and listed by
// Outstanding, in acquisition order. Every idle instance is in state
// Released. A Pool is not safe for concurrent use.
type Pool[T Pooled[T, INFO], INFO any] struct {
	name        string
	env         Environment[T]
	store       *store.Stack[T]
	containers  *Containers
	outstanding []T
	logger      *zap.Logger
	recorder    Recorder
	onGenerated []func(T)
	aliased     bool
}

// New is the constructor of a *scenepool.Pool.
// Receives the host environment, whose Create method builds new instances.
// The initial size instances are created and released before New returns.
// The pool never destroys instances: those that do not fit under the max
// size are dropped and left to the environment.
func New[T Pooled[T, INFO], INFO any](env Environment[T], opts ...Option) (*Pool[T, INFO], error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}

	c := defaultConfig()

	for _, opt := range opts {
		opt(&c)
	}

	if c.initialSize < 0 {
		return nil, fmt.Errorf("%w: initial size %d is negative", ErrInvalidSize, c.initialSize)
	}

	if c.maxSize <= 0 {
		return nil, fmt.Errorf("%w: max size %d must be greater than 0", ErrInvalidSize, c.maxSize)
	}

	hooks := make([]func(T), 0, len(c.onGenerated))

	for _, h := range c.onGenerated {
		hook, ok := h.(func(T))
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrHookType, h)
		}

		hooks = append(hooks, hook)
	}

	p := &Pool[T, INFO]{
		name:        c.name,
		env:         env,
		containers:  NewContainers(),
		logger:      c.logger.Named("scenepool").With(zap.String("pool", c.name)),
		recorder:    c.recorder,
		onGenerated: hooks,
	}

	p.containers.SetGet(c.getContainer, c.fixedGet)
	p.containers.SetReleased(c.releasedCont, c.fixedReleased)

	s, err := store.New(p.create,
		store.WithOnGet(p.onGet),
		store.WithOnRelease(p.onRelease),
		store.WithOnDiscard(p.onDiscard),
		store.WithCollectionCheck[T](c.collectionCheck),
		store.WithDefaultCapacity[T](c.initialSize),
		store.WithMaxSize[T](c.maxSize),
	)
	if err != nil {
		return nil, fmt.Errorf("scenepool: build store: %w", err)
	}

	p.store = s

	if c.initialSize > c.maxSize {
		p.logger.Warn("initial size exceeds max size, extra instances will be dropped",
			zap.Int("initial_size", c.initialSize),
			zap.Int("max_size", c.maxSize),
		)
	}

	p.warm(c.initialSize)

	return p, nil
}

// Name of the pool, as used in logs and metrics.
func (p *Pool[T, INFO]) Name() string {
	return p.name
}

// Generate acquires an active instance set up with info.
func (p *Pool[T, INFO]) Generate(info INFO) T {
	return p.GenerateActive(info, true)
}

// GenerateActive acquires an instance, reusing an idle one when possible.
// The instance is shown or hidden per active, receives the pool and info,
// then its Generated method and the registered generated hooks run.
func (p *Pool[T, INFO]) GenerateActive(info INFO, active bool) T {
	p.mustBeInitialized()

	obj := p.acquire()

	p.env.SetActive(obj, active)
	obj.ProvidePool(p)
	obj.ProvideInfo(info)

	obj.Generated()

	for _, hook := range p.onGenerated {
		hook(obj)
	}

	p.recorder.ObserveGenerate(p.name)
	p.observeSizes()

	return obj
}

// Release gives obj back to the pool. Once released, obj is hidden, placed
// under the released container, in state Released, its info is cleared and
// it is reset, all before it becomes available to Generate again.
// With the collection check enabled, releasing an instance that is not
// outstanding is logged and ignored.
func (p *Pool[T, INFO]) Release(obj T) {
	p.mustBeInitialized()

	err := p.checkRelease(obj)
	if err == nil {
		err = p.store.Release(obj)
	}

	if err != nil {
		p.logger.Error("release ignored",
			zap.Error(err),
			zap.Stringer("state", obj.State()),
		)
		p.recorder.ObserveViolation(p.name, ViolationDoubleRelease)

		return
	}

	p.recorder.ObserveRelease(p.name)
	p.observeSizes()
}

// ReleaseAll releases every outstanding instance, most recent first.
// Instances generated by callbacks during the walk stay outstanding.
func (p *Pool[T, INFO]) ReleaseAll() {
	p.mustBeInitialized()

	for i := len(p.outstanding) - 1; i >= 0; i-- {
		// callbacks may have released more than one instance
		if i < len(p.outstanding) {
			p.Release(p.outstanding[i])
		}
	}
}

// SetCustomGetContainer sets a permanent container for instances acquired
// from now on.
func (p *Pool[T, INFO]) SetCustomGetContainer(container Container) {
	p.mustBeInitialized()

	p.containers.CustomGetContainer(container)
}

// SetCustomReleasedContainer sets a permanent container for instances
// released from now on.
func (p *Pool[T, INFO]) SetCustomReleasedContainer(container Container) {
	p.mustBeInitialized()

	p.containers.CustomReleasedContainer(container)
}

// Outstanding returns a copy of the acquired instances, in acquisition order.
func (p *Pool[T, INFO]) Outstanding() []T {
	p.mustBeInitialized()

	return slices.Clone(p.outstanding)
}

// Len is the number of outstanding instances.
func (p *Pool[T, INFO]) Len() int {
	p.mustBeInitialized()

	return len(p.outstanding)
}

// Clear drops every idle instance without destroying it.
// Outstanding instances are not affected.
func (p *Pool[T, INFO]) Clear() {
	p.mustBeInitialized()

	before := p.store.CountAll()
	p.store.Clear()

	p.logger.Debug("idle instances cleared", zap.Int("dropped", before-p.store.CountAll()))
	p.observeSizes()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T, INFO]) Stats() Stats {
	p.mustBeInitialized()

	return Stats{
		Name:            p.name,
		CountAll:        p.store.CountAll(),
		CountActive:     p.store.CountActive(),
		CountInactive:   p.store.CountInactive(),
		Outstanding:     len(p.outstanding),
		MaxSize:         p.store.MaxSize(),
		CollectionCheck: p.store.CollectionCheck(),
	}
}

func (p *Pool[T, INFO]) warm(n int) {
	if n == 0 {
		return
	}

	warm := make([]T, 0, n)

	for i := 0; i < n; i++ {
		warm = append(warm, p.store.Get())
	}

	for _, obj := range warm {
		p.Release(obj)
	}

	p.logger.Debug("pool warmed", zap.Int("instances", n))
}

// acquire pops instances until one is not already outstanding. Such aliases
// only exist after a double release with the collection check disabled.
func (p *Pool[T, INFO]) acquire() T {
	for {
		p.aliased = false

		obj := p.store.Get()
		if !p.aliased {
			return obj
		}

		p.logger.Error("idle entry refers to an outstanding instance, discarded",
			zap.String("type", fmt.Sprintf("%T", obj)),
		)
		p.recorder.ObserveViolation(p.name, ViolationAliasedGet)
	}
}

func (p *Pool[T, INFO]) create() T {
	obj := p.env.Create()

	p.recorder.ObserveCreate(p.name)
	p.logger.Debug("instance created")

	return obj
}

func (p *Pool[T, INFO]) onGet(obj T) {
	if obj.State() == Got {
		p.aliased = true

		return
	}

	if c := p.containers.GetContainer(); c != nil {
		p.env.Reparent(obj, c)
	}

	p.env.ResetLocalTransform(obj)
	p.outstanding = append(p.outstanding, obj)
	obj.SetState(Got)
}

func (p *Pool[T, INFO]) checkRelease(obj T) error {
	if !p.store.CollectionCheck() || obj.State() == Got {
		return nil
	}

	return fmt.Errorf("%w: %T is %s", ErrNotOutstanding, obj, obj.State())
}

// onRelease runs before the store pushes obj back, so callbacks reached from
// ResetValues never see obj as idle.
func (p *Pool[T, INFO]) onRelease(obj T) {
	if c := p.containers.ReleasedContainer(); c != nil {
		p.env.Reparent(obj, c)
	}

	p.env.ResetLocalTransform(obj)
	p.env.SetActive(obj, false)

	if i := slices.Index(p.outstanding, obj); i >= 0 {
		p.outstanding = slices.Delete(p.outstanding, i, i+1)
	}

	var zero INFO

	obj.SetState(Released)
	obj.ProvideInfo(zero)
	obj.ResetValues()
}

func (p *Pool[T, INFO]) onDiscard(T) {
	p.recorder.ObserveDiscard(p.name)
	p.logger.Debug("instance dropped from the idle store")
}

func (p *Pool[T, INFO]) observeSizes() {
	p.recorder.ObserveSizes(p.name, len(p.outstanding), p.store.CountInactive())
}

func (p *Pool[T, INFO]) mustBeInitialized() {
	if p == nil || p.store == nil {
		panic(ErrNotInitialized)
	}
}
