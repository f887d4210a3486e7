package scenepool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peczenyj/scenepool"
)

type plainInfo struct{ n int }

type plain struct {
	scenepool.Object[*plain, plainInfo]

	value int
	reset int
}

func (p *plain) ResetValues() {
	p.value = 0
	p.reset++
}

type spyReleaser struct {
	released []*plain
}

func (s *spyReleaser) Release(obj *plain) {
	s.released = append(s.released, obj)
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "released", scenepool.Released.String())
	assert.Equal(t, "got", scenepool.Got.String())
	assert.Equal(t, "unknown", scenepool.State(42).String())
}

func TestObjectDefaults(t *testing.T) {
	t.Parallel()

	var p plain

	assert.Equal(t, scenepool.Released, p.State())
	assert.Nil(t, p.OriginPool())
	assert.Zero(t, p.Info())

	p.Generated()
	assert.Zero(t, p.value)
}

func TestObjectAccessors(t *testing.T) {
	t.Parallel()

	var p plain

	p.ProvideInfo(plainInfo{n: 3})
	p.SetState(scenepool.Got)

	assert.Equal(t, plainInfo{n: 3}, p.Info())
	assert.Equal(t, scenepool.Got, p.State())
}

func TestObjectReleaseDelegatesToOrigin(t *testing.T) {
	t.Parallel()

	spy := &spyReleaser{}
	p := &plain{value: 1}

	p.ProvidePool(spy)
	p.Release(p)

	assert.Equal(t, []*plain{p}, spy.released)
	assert.Zero(t, p.reset, "the origin is responsible for resetting")
	assert.Equal(t, 1, p.value)
}

func TestObjectReleaseWithoutOrigin(t *testing.T) {
	t.Parallel()

	p := &plain{value: 5}

	p.Release(p)
	p.Release(p)

	assert.Zero(t, p.value)
	assert.Equal(t, 2, p.reset, "ResetValues is idempotent and may run again")
}
