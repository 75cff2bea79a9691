// Package display provides port.Display implementations.
package display

import (
	"context"
	"sync"

	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/logging"
)

// Window is the last known state of a client on a Memory display.
type Window[C comparable] struct {
	Client   C
	Geometry entity.Geometry
	Mapped   bool
	Focused  bool
}

// Memory is a thread-safe display that only records what it is told.
// It implements port.Display[C] for previews and tests.
type Memory[C comparable] struct {
	mu      sync.RWMutex
	windows map[C]*Window[C]
	order   []C // first-seen order
	focused *C
}

// NewMemory creates an empty in-memory display.
func NewMemory[C comparable]() *Memory[C] {
	return &Memory[C]{
		windows: make(map[C]*Window[C]),
	}
}

// window returns the record for c, creating it on first use.
// Callers must hold mu for writing.
func (m *Memory[C]) window(c C) *Window[C] {
	if w, ok := m.windows[c]; ok {
		return w
	}
	w := &Window[C]{Client: c}
	m.windows[c] = w
	m.order = append(m.order, c)
	return w
}

// Configure records the geometry of c.
func (m *Memory[C]) Configure(ctx context.Context, c C, g entity.Geometry) error {
	m.mu.Lock()
	m.window(c).Geometry = g
	m.mu.Unlock()

	logging.FromContext(ctx).Trace().Any("client", c).Stringer("geometry", g).Msg("configure")
	return nil
}

// Map marks c visible.
func (m *Memory[C]) Map(ctx context.Context, c C) error {
	m.mu.Lock()
	m.window(c).Mapped = true
	m.mu.Unlock()

	logging.FromContext(ctx).Trace().Any("client", c).Msg("map")
	return nil
}

// Unmap marks c hidden.
func (m *Memory[C]) Unmap(ctx context.Context, c C) error {
	m.mu.Lock()
	m.window(c).Mapped = false
	m.mu.Unlock()

	logging.FromContext(ctx).Trace().Any("client", c).Msg("unmap")
	return nil
}

// Focus moves input focus to c.
func (m *Memory[C]) Focus(ctx context.Context, c C) error {
	m.mu.Lock()
	if m.focused != nil {
		if prev, ok := m.windows[*m.focused]; ok {
			prev.Focused = false
		}
	}
	m.window(c).Focused = true
	m.focused = &c
	m.mu.Unlock()

	logging.FromContext(ctx).Trace().Any("client", c).Msg("focus")
	return nil
}

// Forget drops every record of c, as when its window is destroyed.
func (m *Memory[C]) Forget(c C) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.windows[c]; !ok {
		return
	}
	delete(m.windows, c)
	for i, o := range m.order {
		if o == c {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.focused != nil && *m.focused == c {
		m.focused = nil
	}
}

// Window returns a copy of the state recorded for c.
func (m *Memory[C]) Window(c C) (Window[C], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.windows[c]
	if !ok {
		return Window[C]{}, false
	}
	return *w, true
}

// Windows returns a copy of every record in first-seen order.
func (m *Memory[C]) Windows() []Window[C] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Window[C], 0, len(m.order))
	for _, c := range m.order {
		out = append(out, *m.windows[c])
	}
	return out
}

// Visible returns the mapped windows in first-seen order.
func (m *Memory[C]) Visible() []Window[C] {
	all := m.Windows()
	out := all[:0]
	for _, w := range all {
		if w.Mapped {
			out = append(out, w)
		}
	}
	return out
}

// Focused returns the client holding input focus.
func (m *Memory[C]) Focused() (C, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.focused == nil {
		var zero C
		return zero, false
	}
	return *m.focused, true
}

// Len returns the number of known clients.
func (m *Memory[C]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.windows)
}
