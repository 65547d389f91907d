// Package ttlmap provides a thread safe hash map whose values expire after a fixed lifetime.
package ttlmap

import (
	"sync"
	"time"

	"github.com/omniwork/contracthub/internal/task"
)

type entry[V any] struct {
	value    V
	inserted time.Time
}

// Map wraps the builtin map type with an RWMutex and per-entry lifetimes.
// Expired entries are hidden from lookups immediately; their memory is only reclaimed
// by the cleanup task scheduled via ScheduleCleanup.
type Map[K comparable, V any] struct {
	mtx      sync.RWMutex
	values   map[K]entry[V]
	lifetime time.Duration
	cleanup  *task.RepeatingTask
}

// New creates a new empty map whose values exist for the given lifetime
func New[K comparable, V any](lifetime time.Duration) *Map[K, V] {
	return &Map[K, V]{
		values:   make(map[K]entry[V]),
		lifetime: lifetime,
	}
}

// ScheduleCleanup schedules the task that removes expired entries in the given interval.
// Call StopCleanup as soon as the map is no longer needed as it would not be garbage
// collected otherwise.
func (obj *Map[K, V]) ScheduleCleanup(tick time.Duration) {
	if obj.cleanup != nil {
		return
	}
	obj.cleanup = task.NewRepeating(func() {
		obj.mtx.Lock()
		defer obj.mtx.Unlock()
		for key, val := range obj.values {
			if time.Since(val.inserted) > obj.lifetime {
				delete(obj.values, key)
			}
		}
	}, tick)
	obj.cleanup.Start()
}

// StopCleanup stops the cleanup task.
// If no cleanup task is scheduled, this is a no-op.
func (obj *Map[K, V]) StopCleanup() {
	if obj.cleanup == nil {
		return
	}
	obj.cleanup.Stop(true)
	obj.cleanup = nil
}

// Size returns the amount of stored key-value pairs, including expired but not yet cleaned up ones
func (obj *Map[K, V]) Size() int {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return len(obj.values)
}

// Lookup returns the value assigned to the given key and a boolean indicating whether a
// non-expired value was present
func (obj *Map[K, V]) Lookup(key K) (V, bool) {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	val, ok := obj.values[key]
	if !ok || time.Since(val.inserted) > obj.lifetime {
		var zero V
		return zero, false
	}
	return val.value, true
}

// Set sets a key-value pair, resetting the entry's lifetime
func (obj *Map[K, V]) Set(key K, value V) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.values[key] = entry[V]{
		value:    value,
		inserted: time.Now(),
	}
}

// Unset deletes the value assigned to the given key
func (obj *Map[K, V]) Unset(key K) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	delete(obj.values, key)
}

// Clear clears the whole map
func (obj *Map[K, V]) Clear() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.values = make(map[K]entry[V])
}
