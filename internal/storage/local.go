// Package storage provides origin-scoped durable key/value storage shared by
// several storefront contexts, with change notification. It mirrors the
// platform storage contract the cart relies on: a write is visible to every
// attached context, but the change event fires only in contexts other than
// the writer's own.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Event describes one observed change to a watched key. A deleted key
// carries an empty NewValue.
type Event struct {
	Key      string
	OldValue string
	NewValue string
}

// Local is the shared store. One Local stands for one origin; each attached
// Handle stands for one execution context (a tab, a worker, a test case).
type Local struct {
	mu      sync.Mutex
	path    string
	values  map[string]string
	nextID  int64
	watches map[int64]watch
}

type watch struct {
	handle int64
	key    string
	fn     func(Event)
}

// Open loads the store from the given file, creating parent directories as
// needed. An empty path keeps the store in memory only, which tests use.
func Open(path string) (*Local, error) {
	l := &Local{
		path:    path,
		values:  map[string]string{},
		watches: map[int64]watch{},
	}

	if path == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	if err := json.Unmarshal(raw, &l.values); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return l, nil
}

// Attach registers a new execution context on the store.
func (l *Local) Attach() *Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	return &Handle{local: l, id: l.nextID}
}

// persist must be called with l.mu held.
func (l *Local) persist() error {
	if l.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(l.values, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := os.WriteFile(l.path, raw, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

// collect must be called with l.mu held. It snapshots the watchers to notify
// so dispatch can happen outside the lock.
func (l *Local) collect(writer int64, key string) []func(Event) {
	var fns []func(Event)
	for _, w := range l.watches {
		if w.key == key && w.handle != writer {
			fns = append(fns, w.fn)
		}
	}
	return fns
}

// Handle is one context's view of the store.
type Handle struct {
	local *Local
	id    int64
}

func (h *Handle) Get(key string) (string, bool) {
	h.local.mu.Lock()
	defer h.local.mu.Unlock()

	v, ok := h.local.values[key]
	return v, ok
}

// Set writes a key and notifies watchers on every other handle. Writing the
// current value is a no-op and fires no event, matching the platform storage
// contract; this is what stops notify/refetch loops between contexts.
func (h *Handle) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	l := h.local
	l.mu.Lock()

	old, had := l.values[key]
	if had && old == value {
		l.mu.Unlock()
		return nil
	}

	l.values[key] = value
	if err := l.persist(); err != nil {
		l.values[key] = old
		if !had {
			delete(l.values, key)
		}
		l.mu.Unlock()
		return fmt.Errorf("l.persist: %w", err)
	}

	fns := l.collect(h.id, key)
	l.mu.Unlock()

	ev := Event{Key: key, OldValue: old, NewValue: value}
	for _, fn := range fns {
		fn(ev)
	}

	return nil
}

// Delete removes a key; absent keys are a no-op.
func (h *Handle) Delete(key string) error {
	l := h.local
	l.mu.Lock()

	old, had := l.values[key]
	if !had {
		l.mu.Unlock()
		return nil
	}

	delete(l.values, key)
	if err := l.persist(); err != nil {
		l.values[key] = old
		l.mu.Unlock()
		return fmt.Errorf("l.persist: %w", err)
	}

	fns := l.collect(h.id, key)
	l.mu.Unlock()

	ev := Event{Key: key, OldValue: old, NewValue: ""}
	for _, fn := range fns {
		fn(ev)
	}

	return nil
}

// Watch subscribes to changes of one key made through other handles. The
// returned cancel must be called on teardown to release the watcher.
func (h *Handle) Watch(key string, fn func(Event)) func() {
	l := h.local
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.watches[id] = watch{handle: h.id, key: key, fn: fn}

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.watches, id)
	}
}

// Close drops every watcher registered through this handle.
func (h *Handle) Close() {
	l := h.local
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, w := range l.watches {
		if w.handle == h.id {
			delete(l.watches, id)
		}
	}
}
