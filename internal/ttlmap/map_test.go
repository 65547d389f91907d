package ttlmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("stores and retrieves values", func(t *testing.T) {
		obj := New[string, int](time.Minute)
		obj.Set("a", 1)

		val, ok := obj.Lookup("a")
		require.True(t, ok)
		assert.Equal(t, 1, val)
		assert.Equal(t, 1, obj.Size())
	})

	t.Run("hides expired values", func(t *testing.T) {
		obj := New[string, int](30 * time.Millisecond)
		obj.Set("a", 1)

		time.Sleep(60 * time.Millisecond)

		_, ok := obj.Lookup("a")
		assert.False(t, ok)
		// Memory is only reclaimed by the cleanup task
		assert.Equal(t, 1, obj.Size())
	})

	t.Run("resets the lifetime on set", func(t *testing.T) {
		obj := New[string, int](50 * time.Millisecond)
		obj.Set("a", 1)
		time.Sleep(30 * time.Millisecond)
		obj.Set("a", 2)
		time.Sleep(30 * time.Millisecond)

		val, ok := obj.Lookup("a")
		require.True(t, ok)
		assert.Equal(t, 2, val)
	})

	t.Run("unsets and clears", func(t *testing.T) {
		obj := New[string, int](time.Minute)
		obj.Set("a", 1)
		obj.Set("b", 2)

		obj.Unset("a")
		_, ok := obj.Lookup("a")
		assert.False(t, ok)

		obj.Clear()
		assert.Zero(t, obj.Size())
	})

	t.Run("cleanup task reclaims expired entries", func(t *testing.T) {
		obj := New[string, int](20 * time.Millisecond)
		obj.Set("a", 1)
		obj.ScheduleCleanup(10 * time.Millisecond)
		defer obj.StopCleanup()

		assert.Eventually(t, func() bool {
			return obj.Size() == 0
		}, time.Second, 10*time.Millisecond)
	})
}
