package scenepool

// Containers holds where acquired and released instances are placed.
// A container only takes part in placement while it is fixed; an unfixed or
// nil container leaves placement to the caller.
type Containers struct {
	get           Container
	fixedGet      bool
	released      Container
	fixedReleased bool
}

// NewContainers returns a configuration with both containers unset and fixed.
func NewContainers() *Containers {
	return &Containers{
		fixedGet:      true,
		fixedReleased: true,
	}
}

// GetContainer is the placement target for acquired instances, or nil.
func (c *Containers) GetContainer() Container {
	if !c.fixedGet {
		return nil
	}

	return c.get
}

// ReleasedContainer is the placement target for released instances, or nil.
func (c *Containers) ReleasedContainer() Container {
	if !c.fixedReleased {
		return nil
	}

	return c.released
}

// SetGet configures the get container and whether it is fixed.
func (c *Containers) SetGet(container Container, fixed bool) {
	c.get = container
	c.fixedGet = fixed
}

// SetReleased configures the released container and whether it is fixed.
func (c *Containers) SetReleased(container Container, fixed bool) {
	c.released = container
	c.fixedReleased = fixed
}

// CustomGetContainer sets a custom and permanent container for acquired instances.
func (c *Containers) CustomGetContainer(container Container) {
	c.SetGet(container, true)
}

// CustomReleasedContainer sets a custom and permanent container for released instances.
func (c *Containers) CustomReleasedContainer(container Container) {
	c.SetReleased(container, true)
}
