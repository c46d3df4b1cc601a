package inmemorycorpus

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridsow/internal/tree"
)

func TestStoreAndLoad(t *testing.T) {
	c := New()
	ctx := context.Background()

	// Load of a name that doesn't exist yet
	_, found, err := c.Load(ctx, "exp1")
	require.NoError(t, err)
	assert.False(t, found)

	v := tree.NewMapping(tree.E("lr", tree.Float(0.1)))
	require.NoError(t, c.Store(ctx, "exp1", v))

	got, found, err := c.Load(ctx, "exp1")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, tree.Equal(v, got))
}

func TestStore_IsolatesCallers(t *testing.T) {
	c := New()
	ctx := context.Background()
	v := tree.NewMapping(tree.E("lr", tree.Float(0.1)))
	require.NoError(t, c.Store(ctx, "exp1", v))

	v.Mapping().Set("lr", tree.Float(0.9))
	got, _, err := c.Load(ctx, "exp1")
	require.NoError(t, err)
	lr, _ := got.Mapping().Get("lr")
	assert.Equal(t, tree.Float(0.1), lr)

	got.Mapping().Set("lr", tree.Float(0.5))
	again, _, err := c.Load(ctx, "exp1")
	require.NoError(t, err)
	lr, _ = again.Mapping().Get("lr")
	assert.Equal(t, tree.Float(0.1), lr)
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("exp%02d", i)
			assert.NoError(t, c.Store(ctx, name, tree.Int(int64(i))))
			_, found, err := c.Load(ctx, name)
			assert.NoError(t, err)
			assert.True(t, found)
		}(i)
	}
	wg.Wait()

	names := c.Names()
	assert.Len(t, names, 50)
	assert.Equal(t, "exp00", names[0])
	assert.Equal(t, "exp49", names[49])
}
