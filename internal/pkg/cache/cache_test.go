package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "blog:cache:article:hot", Key("article:hot"))
	assert.Equal(t, "blog:cache:article:popular:5", Key("article:popular", 5))
	assert.Equal(t, "blog:cache:article:suggestions:go:1", Key("article:suggestions", "go", 1))
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest []string
	hit, err := c.GetJSON(ctx, Key("x"), &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.SetJSON(ctx, Key("x"), []string{"a"}, 0))
	c.Invalidate(ctx, Key("x"))
	c.InvalidateOp(ctx, "x")
}
