package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionThreeWay(t *testing.T) {
	elems := []box{
		newBox(1, 0, 2, 0, 1),
		newBox(2, 5, 8, 0, 1),
		newBox(3, 3, 6, 0, 1),
		newBox(4, -2, 1, 0, 1),
		newBox(5, 4, 4, 0, 1),
	}
	orig := map[int]bool{}
	for _, e := range elems {
		orig[e.ID] = true
	}

	const div = 4
	pr := partition[box, int](elems, AxisX, div)

	for _, e := range pr.left {
		assert.Less(t, e.R.X.End, div)
	}
	for _, e := range pr.right {
		assert.Greater(t, e.R.X.Start, div)
	}
	for _, e := range pr.mid {
		assert.True(t, e.R.X.Start <= div && e.R.X.End >= div)
	}

	assert.Equal(t, len(elems), len(pr.left)+len(pr.mid)+len(pr.right))

	seen := map[int]bool{}
	for _, group := range [][]box{pr.left, pr.mid, pr.right} {
		for _, e := range group {
			assert.False(t, seen[e.ID], "element %d appears in more than one bin", e.ID)
			seen[e.ID] = true
		}
	}
	assert.Equal(t, orig, seen)
}

func TestPartitionAllOnOneSide(t *testing.T) {
	elems := []box{
		newBox(1, 0, 1, 0, 1),
		newBox(2, 2, 3, 0, 1),
		newBox(3, 4, 5, 0, 1),
	}
	pr := partition[box, int](elems, AxisX, 100)
	assert.Len(t, pr.left, 3)
	assert.Empty(t, pr.mid)
	assert.Empty(t, pr.right)
}

func TestPartitionEmptyInput(t *testing.T) {
	pr := partition[box, int](nil, AxisX, 0)
	assert.Empty(t, pr.left)
	assert.Empty(t, pr.mid)
	assert.Empty(t, pr.right)
}

func TestBoundingRangeEmptyIsZeroValue(t *testing.T) {
	r := boundingRange[box, int](nil, AxisX)
	assert.True(t, r.Empty())
}

func TestBoundingRangeCoversAllElements(t *testing.T) {
	elems := []box{
		newBox(1, -3, -1, 0, 1),
		newBox(2, 5, 9, 0, 1),
		newBox(3, 0, 2, 0, 1),
	}
	r := boundingRange[box, int](elems, AxisX)
	assert.Equal(t, Range[int]{Start: -3, End: 9}, r)
}
