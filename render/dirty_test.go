package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/annotate"
)

func TestMergeDirtyDisjoint(t *testing.T) {
	in := []annotate.Rect{
		annotate.RectXYWH(0, 0, 10, 10),
		annotate.RectXYWH(50, 50, 10, 10),
	}
	assert.Len(t, mergeDirty(in), 2)
}

func TestMergeDirtyOverlapping(t *testing.T) {
	in := []annotate.Rect{
		annotate.RectXYWH(0, 0, 10, 10),
		annotate.RectXYWH(5, 5, 10, 10),
	}
	out := mergeDirty(in)
	assert.Len(t, out, 1)
	assert.Equal(t, annotate.RectXYWH(0, 0, 15, 15), out[0])
}

func TestMergeDirtyChained(t *testing.T) {
	// The third rect only overlaps the union of the first two; merging
	// must iterate until stable.
	in := []annotate.Rect{
		annotate.RectXYWH(0, 0, 10, 10),
		annotate.RectXYWH(5, 5, 10, 10),
		annotate.RectXYWH(14, 14, 10, 10),
	}
	out := mergeDirty(in)
	assert.Len(t, out, 1)
	assert.Equal(t, annotate.RectXYWH(0, 0, 24, 24), out[0])
}

func TestMergeDirtyDropsEmpty(t *testing.T) {
	in := []annotate.Rect{
		{},
		annotate.RectXYWH(0, 0, 10, 10),
		annotate.RectXYWH(3, 3, 0, 5),
	}
	out := mergeDirty(in)
	assert.Len(t, out, 1)
}

func TestMergeDirtyNil(t *testing.T) {
	assert.Empty(t, mergeDirty(nil))
}

func TestIntersectsAny(t *testing.T) {
	regions := []annotate.Rect{
		annotate.RectXYWH(0, 0, 10, 10),
		annotate.RectXYWH(100, 100, 10, 10),
	}
	assert.True(t, intersectsAny(annotate.RectXYWH(5, 5, 10, 10), regions))
	assert.True(t, intersectsAny(annotate.RectXYWH(105, 90, 2, 20), regions))
	assert.False(t, intersectsAny(annotate.RectXYWH(50, 50, 10, 10), regions))
	assert.False(t, intersectsAny(annotate.RectXYWH(5, 5, 10, 10), nil))
}
