package kdtree

import (
	"testing"

	"github.com/maja42/vmath"
	"github.com/stretchr/testify/assert"
)

func TestRayCastHitsNearestBox(t *testing.T) {
	elems := []fbox{
		newFBox(1, 10, 11, -5, 5),  // entered at t=10
		newFBox(2, 20, 21, -5, 5),  // entered at t=20, farther
	}
	tree := Build[fbox, float32](elems, nil)

	dist, hits, ok := RayCast[fbox](tree, vmath.Vec2f{0, 0}, vmath.Vec2f{1, 0}, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 10, dist, 1e-4)
	assert.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].Inner().ID)
}

func TestRayCastCleanMiss(t *testing.T) {
	elems := []fbox{
		newFBox(1, 10, 11, 10, 11),
		newFBox(2, -11, -10, -11, -10),
	}
	tree := Build[fbox, float32](elems, nil)

	// Ray travels along +x at y=0; neither box's y-slab contains 0.
	_, hits, ok := RayCast[fbox](tree, vmath.Vec2f{0, 0}, vmath.Vec2f{1, 0}, 1000)
	assert.False(t, ok)
	assert.Empty(t, hits)
}

func TestRayCastBeyondMaxDistMisses(t *testing.T) {
	elems := []fbox{newFBox(1, 100, 101, -1, 1)}
	tree := Build[fbox, float32](elems, nil)

	_, hits, ok := RayCast[fbox](tree, vmath.Vec2f{0, 0}, vmath.Vec2f{1, 0}, 10)
	assert.False(t, ok)
	assert.Empty(t, hits)
}

func TestRayCastGenuineTieReturnsBothHits(t *testing.T) {
	elems := []fbox{
		newFBox(1, 10, 11, -5, 5),
		newFBox(2, 10, 11, -2, 2),
	}
	tree := Build[fbox, float32](elems, nil)

	dist, hits, ok := RayCast[fbox](tree, vmath.Vec2f{0, 0}, vmath.Vec2f{1, 0}, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 10, dist, 1e-4)
	assert.Len(t, hits, 2)

	ids := map[int]bool{}
	for _, h := range hits {
		ids[h.Inner().ID] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, ids)
}

func TestRayCastOnEmptyTree(t *testing.T) {
	tree := Build[fbox, float32](nil, nil)
	_, hits, ok := RayCast[fbox](tree, vmath.Vec2f{0, 0}, vmath.Vec2f{1, 0}, 10)
	assert.False(t, ok)
	assert.Empty(t, hits)
}
