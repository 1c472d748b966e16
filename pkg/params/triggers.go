package params

import "sync"

// Triggers fires named host events. Calls carry no arguments and return nothing.
type Triggers interface {
	Call(name string)
}

// Handler reacts to a trigger.
type Handler func()

// Registry is an in-process Triggers implementation. Handlers run
// synchronously, in registration order, on the caller's goroutine.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	counts   map[string]uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string][]Handler),
		counts:   make(map[string]uint64),
	}
}

// On registers h for name.
func (r *Registry) On(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = append(r.handlers[name], h)
}

// Call runs every handler registered for name. Unknown names are a no-op.
func (r *Registry) Call(name string) {
	r.mu.Lock()
	r.counts[name]++
	hs := append([]Handler(nil), r.handlers[name]...)
	r.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

// Count returns how many times name has been called.
func (r *Registry) Count(name string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[name]
}
