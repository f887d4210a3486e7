package config

import (
	"errors"
	"fmt"

	"github.com/peczenyj/scenepool"
	"github.com/peczenyj/scenepool/internal/logging"
)

var (
	// ErrInvalidConfig indicates a configuration that fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrUnknownContainer indicates a container name the resolver does not know.
	ErrUnknownContainer = errors.New("config: unknown container")
)

// PoolConfig is the serialized form of a pool setup.
type PoolConfig struct {
	Name            string `yaml:"name" json:"name"`
	CollectionCheck bool   `yaml:"collection_check" json:"collection_check"`
	InitialSize     int    `yaml:"initial_size" json:"initial_size"`
	MaxSize         int    `yaml:"max_size" json:"max_size"`

	// Containers are referenced by name and resolved by the host.
	GetContainer           string `yaml:"get_container,omitempty" json:"get_container,omitempty"`
	FixedGetContainer      bool   `yaml:"fixed_get_container" json:"fixed_get_container"`
	ReleasedContainer      string `yaml:"released_container,omitempty" json:"released_container,omitempty"`
	FixedReleasedContainer bool   `yaml:"fixed_released_container" json:"fixed_released_container"`
}

// DefaultPool returns the pool settings used for keys missing from a file.
func DefaultPool() PoolConfig {
	return PoolConfig{
		Name:                   scenepool.DefaultName,
		MaxSize:                scenepool.DefaultMaxSize,
		FixedGetContainer:      true,
		FixedReleasedContainer: true,
	}
}

// Validate checks the sizes and the name.
func (c PoolConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: pool name is required", ErrInvalidConfig)
	}

	if c.InitialSize < 0 {
		return fmt.Errorf("%w: initial_size must be >= 0, got %d", ErrInvalidConfig, c.InitialSize)
	}

	if c.MaxSize <= 0 {
		return fmt.Errorf("%w: max_size must be > 0, got %d", ErrInvalidConfig, c.MaxSize)
	}

	return nil
}

// Options converts the configuration into pool options. Container names are
// looked up with resolve, which returns nil for unknown names.
func (c PoolConfig) Options(resolve func(name string) scenepool.Container) ([]scenepool.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	get, err := lookup(resolve, c.GetContainer)
	if err != nil {
		return nil, err
	}

	released, err := lookup(resolve, c.ReleasedContainer)
	if err != nil {
		return nil, err
	}

	return []scenepool.Option{
		scenepool.WithName(c.Name),
		scenepool.WithCollectionCheck(c.CollectionCheck),
		scenepool.WithInitialSize(c.InitialSize),
		scenepool.WithMaxSize(c.MaxSize),
		scenepool.WithGetContainer(get, c.FixedGetContainer),
		scenepool.WithReleasedContainer(released, c.FixedReleasedContainer),
	}, nil
}

func lookup(resolve func(string) scenepool.Container, name string) (scenepool.Container, error) {
	if name == "" {
		return nil, nil
	}

	if resolve == nil {
		return nil, fmt.Errorf("%w: %q (no resolver)", ErrUnknownContainer, name)
	}

	container := resolve(name)
	if container == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContainer, name)
	}

	return container, nil
}

// SimulationConfig drives the projectile simulation of the CLI.
type SimulationConfig struct {
	Pool PoolConfig `yaml:"pool" json:"pool"`

	Frames        int     `yaml:"frames" json:"frames"`
	SpawnPerFrame int     `yaml:"spawn_per_frame" json:"spawn_per_frame"`
	Lifetime      int     `yaml:"lifetime" json:"lifetime"` // in frames
	Speed         float64 `yaml:"speed" json:"speed"`

	MetricsNamespace string         `yaml:"metrics_namespace" json:"metrics_namespace"`
	Log              logging.Config `yaml:"log" json:"log"`
}

// DefaultSimulation returns the simulation settings used for keys missing
// from a file.
func DefaultSimulation() SimulationConfig {
	pool := DefaultPool()
	pool.Name = "projectiles"
	pool.InitialSize = 8
	pool.MaxSize = 32
	pool.GetContainer = "live"
	pool.ReleasedContainer = "bin"

	return SimulationConfig{
		Pool:             pool,
		Frames:           120,
		SpawnPerFrame:    2,
		Lifetime:         10,
		Speed:            1,
		MetricsNamespace: "scenepool",
		Log:              logging.Default(),
	}
}

// LoadSimulation reads a simulation file on top of DefaultSimulation and
// validates it.
func LoadSimulation(filePath string) (SimulationConfig, error) {
	cfg := DefaultSimulation()

	if err := Load(filePath, &cfg); err != nil {
		return SimulationConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return SimulationConfig{}, err
	}

	return cfg, nil
}

// Validate checks the pool settings and the simulation rates.
func (c SimulationConfig) Validate() error {
	if err := c.Pool.Validate(); err != nil {
		return err
	}

	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must be >= 0, got %d", ErrInvalidConfig, c.Frames)
	}

	if c.SpawnPerFrame < 0 {
		return fmt.Errorf("%w: spawn_per_frame must be >= 0, got %d", ErrInvalidConfig, c.SpawnPerFrame)
	}

	if c.Lifetime <= 0 {
		return fmt.Errorf("%w: lifetime must be > 0, got %d", ErrInvalidConfig, c.Lifetime)
	}

	return nil
}
