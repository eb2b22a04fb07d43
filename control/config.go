// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload propagation.

package control

import (
	"maps"
	"reflect"
	"slices"
	"sync"
)

// ReloadFunc receives a snapshot of the config and the keys that changed.
type ReloadFunc func(snapshot map[string]any, changed []string)

// ConfigStore is a dynamic key/value map with snapshot reads and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []ReloadFunc
}

// NewConfigStore initializes a new config store with optional initial data.
func NewConfigStore(initial map[string]any) *ConfigStore {
	cfg := make(map[string]any, len(initial))
	maps.Copy(cfg, initial)
	return &ConfigStore{
		config: cfg,
	}
}

// Get returns a single config value.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key]
	return v, ok
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return maps.Clone(cs.config)
}

// SetConfig merges new values and notifies listeners when anything changed.
// Listeners run synchronously on the caller's goroutine, after the lock is
// released, in registration order.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	var changed []string
	for k, v := range newCfg {
		if old, ok := cs.config[k]; ok && reflect.DeepEqual(old, v) {
			continue
		}
		cs.config[k] = v
		changed = append(changed, k)
	}
	if len(changed) == 0 {
		cs.mu.Unlock()
		return
	}
	slices.Sort(changed)
	snapshot := maps.Clone(cs.config)
	listeners := append([]ReloadFunc(nil), cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot, changed)
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn ReloadFunc) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
