package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarousel_WrapsBothDirections(t *testing.T) {
	for n := 1; n <= 7; n++ {
		var c Carousel[string]
		c.Open("entity", n)
		for i := 0; i < n; i++ {
			c.Next()
		}
		assert.Equal(t, 0, c.Index(), "next x%d", n)

		for i := 0; i < n; i++ {
			c.Prev()
		}
		assert.Equal(t, 0, c.Index(), "prev x%d", n)
	}
}

func TestCarousel_SingleImageIsNoOp(t *testing.T) {
	var c Carousel[int]
	c.Open(1, 1)
	c.Next()
	assert.Equal(t, 0, c.Index())
	c.Prev()
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Navigable())
}

func TestCarousel_EmptyImages(t *testing.T) {
	var c Carousel[int]
	c.Open(1, 0)
	c.Next()
	c.Prev()
	assert.False(t, c.Jump(0))
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.IsOpen())
	assert.False(t, c.Navigable())

	c.Open(2, -3)
	assert.Equal(t, 0, c.Len())
}

func TestCarousel_PrevFromZeroGoesToLast(t *testing.T) {
	var c Carousel[int]
	c.Open(1, 4)
	c.Prev()
	assert.Equal(t, 3, c.Index())
}

func TestCarousel_Jump(t *testing.T) {
	var c Carousel[int]
	c.Open(1, 3)

	tests := []struct {
		k       int
		applied bool
		want    int
	}{
		{2, true, 2},
		{3, false, 2},
		{-1, false, 2},
		{0, true, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.applied, c.Jump(tt.k), "jump(%d)", tt.k)
		assert.Equal(t, tt.want, c.Index(), "after jump(%d)", tt.k)
	}
}

func TestCarousel_ReopenResetsIndex(t *testing.T) {
	var c Carousel[string]
	c.Open("a", 5)
	c.Next()
	c.Next()
	require.Equal(t, 2, c.Index())

	c.Open("b", 5)
	assert.Equal(t, 0, c.Index())
	e, ok := c.Entity()
	assert.True(t, ok)
	assert.Equal(t, "b", e)

	c.Close()
	c.Open("a", 5)
	assert.Equal(t, 0, c.Index())
}

func TestCarousel_ClosedIgnoresNavigation(t *testing.T) {
	var c Carousel[string]
	c.Next()
	c.Prev()
	assert.False(t, c.Jump(0))
	assert.Equal(t, Closed, c.State())

	c.Open("a", 3)
	c.Next()
	c.Close()
	c.Next()
	assert.Equal(t, 0, c.Index())
	_, ok := c.Entity()
	assert.False(t, ok)
}

func TestCarousel_StoryScenario(t *testing.T) {
	var c Carousel[string]
	c.Open("story", 3)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 0, c.Index())

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	c.Next()
	assert.Equal(t, 0, c.Index())
}
