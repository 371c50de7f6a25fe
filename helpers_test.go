package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests live inside the package (not _test suffix package) because
// they exercise the unexported helpers directly, pairing white-box tests
// with the file they cover.

func TestWiggleInterval(t *testing.T) {
	cases := []struct {
		in      float64
		wantY   float64
		wantOK  bool
		comment string
	}{
		{0.5, 0.5, true, "interior value passes through"},
		{-wiggleSlack / 2, 0, true, "just below zero snaps to zero"},
		{1 + wiggleSlack/2, 1, true, "just above one snaps to one"},
		{-1, 0, false, "far below zero is rejected"},
		{2, 0, false, "far above one is rejected"},
	}

	for _, c := range cases {
		y, ok := wiggleInterval(c.in)
		assert.Equal(t, c.wantOK, ok, c.comment)
		if ok {
			assert.InDelta(t, c.wantY, y, 1e-15, c.comment)
		}
	}
}

func TestContainsND(t *testing.T) {
	nodes := Nodes{{0, 0}, {1, 2}, {2, 0}}

	assert.True(t, containsND(nodes, []float64{1, 1}))
	assert.False(t, containsND(nodes, []float64{5, 5}))
	assert.False(t, containsND(nodes, []float64{1, -1}))
}

func TestCrossProduct(t *testing.T) {
	assert.Equal(t, 1.0, crossProduct(1, 0, 0, 1))
	assert.Equal(t, -1.0, crossProduct(0, 1, 1, 0))
	assert.Equal(t, 0.0, crossProduct(1, 1, 2, 2))
}

func TestBBox(t *testing.T) {
	nodes := Nodes{{0, 3}, {-1, 5}, {4, 1}}
	xmin, xmax, ymin, ymax := bbox(nodes)

	assert.Equal(t, -1.0, xmin)
	assert.Equal(t, 4.0, xmax)
	assert.Equal(t, 1.0, ymin)
	assert.Equal(t, 5.0, ymax)
}

