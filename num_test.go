package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeIntersects(t *testing.T) {
	a := Range[int]{Start: 0, End: 10}
	b := Range[int]{Start: 10, End: 20}
	c := Range[int]{Start: 11, End: 20}

	assert.True(t, a.Intersects(b), "touching ranges must count as intersecting")
	assert.False(t, a.Intersects(c))
}

func TestRangeEmptyIsZeroValue(t *testing.T) {
	assert.True(t, Range[int]{}.Empty())
	assert.False(t, (Range[int]{Start: 0, End: 1}).Empty())
}

func TestRangeMerge(t *testing.T) {
	a := Range[int]{Start: 2, End: 5}
	b := Range[int]{Start: -1, End: 3}
	assert.Equal(t, Range[int]{Start: -1, End: 5}, a.Merge(b))
}

func TestRectIntersects(t *testing.T) {
	a := Rect[int]{X: Range[int]{0, 10}, Y: Range[int]{0, 10}}
	b := Rect[int]{X: Range[int]{5, 15}, Y: Range[int]{5, 15}}
	c := Rect[int]{X: Range[int]{11, 20}, Y: Range[int]{0, 10}}

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestAxisPerp(t *testing.T) {
	assert.Equal(t, AxisY, AxisX.Perp())
	assert.Equal(t, AxisX, AxisY.Perp())
}
