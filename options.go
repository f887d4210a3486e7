package scenepool

import "go.uber.org/zap"

const (
	// DefaultName is used for logs and metrics when no name is given.
	DefaultName = "default"
	// DefaultMaxSize is the idle bound used when none is given.
	DefaultMaxSize = 100
)

type poolConfig struct {
	name            string
	collectionCheck bool
	initialSize     int
	maxSize         int
	getContainer    Container
	fixedGet        bool
	releasedCont    Container
	fixedReleased   bool
	logger          *zap.Logger
	recorder        Recorder
	onGenerated     []any
}

func defaultConfig() poolConfig {
	return poolConfig{
		name:          DefaultName,
		maxSize:       DefaultMaxSize,
		fixedGet:      true,
		fixedReleased: true,
		logger:        zap.NewNop(),
		recorder:      nopRecorder{},
	}
}

// Option type.
type Option func(*poolConfig)

// WithName is a functional option.
// Names the pool in logs and metrics.
func WithName(name string) Option {
	return func(c *poolConfig) {
		c.name = name
	}
}

// WithCollectionCheck is a functional option.
// When enabled, releasing an idle instance is reported and ignored.
func WithCollectionCheck(enabled bool) Option {
	return func(c *poolConfig) {
		c.collectionCheck = enabled
	}
}

// WithInitialSize is a functional option.
// Number of instances created and released when the pool is built.
func WithInitialSize(size int) Option {
	return func(c *poolConfig) {
		c.initialSize = size
	}
}

// WithMaxSize is a functional option.
// Maximum number of idle instances; extra releases are destroyed.
func WithMaxSize(size int) Option {
	return func(c *poolConfig) {
		c.maxSize = size
	}
}

// WithGetContainer is a functional option.
// Container for acquired instances. It is ignored while not fixed.
func WithGetContainer(container Container, fixed bool) Option {
	return func(c *poolConfig) {
		c.getContainer = container
		c.fixedGet = fixed
	}
}

// WithReleasedContainer is a functional option.
// Container for released instances. It is ignored while not fixed.
func WithReleasedContainer(container Container, fixed bool) Option {
	return func(c *poolConfig) {
		c.releasedCont = container
		c.fixedReleased = fixed
	}
}

// WithLogger is a functional option.
// Diagnostics are discarded without it.
func WithLogger(logger *zap.Logger) Option {
	return func(c *poolConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder is a functional option.
func WithRecorder(recorder Recorder) Option {
	return func(c *poolConfig) {
		if recorder != nil {
			c.recorder = recorder
		}
	}
}

// WithOnItemGenerated is a functional option.
// Includes one or more hooks executed at the end of every Generate, after
// the instance's own Generated method. T must be the pool's instance type,
// otherwise New fails with ErrHookType.
func WithOnItemGenerated[T any](hooks ...func(T)) Option {
	return func(c *poolConfig) {
		for _, hook := range hooks {
			c.onGenerated = append(c.onGenerated, hook)
		}
	}
}
