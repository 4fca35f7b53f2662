package events

import (
	"sync"

	"mojopi/entities"
)

// Recent is a bounded, thread-safe buffer of the latest registry events,
// plus running counters per event kind.
type Recent struct {
	mu       sync.RWMutex
	capacity int
	items    []entities.RegistryEvent
	counts   map[string]int
}

func NewRecent(capacity int) *Recent {
	if capacity <= 0 {
		capacity = 64
	}
	return &Recent{
		capacity: capacity,
		counts:   make(map[string]int),
	}
}

// Add appends an event, evicting the oldest when the buffer is full.
func (r *Recent) Add(event entities.RegistryEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, event)
	if len(r.items) > r.capacity {
		r.items = r.items[len(r.items)-r.capacity:]
	}
	r.counts[event.Kind]++
}

// List returns the buffered events, newest first.
func (r *Recent) List() []entities.RegistryEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.RegistryEvent, len(r.items))
	for i, event := range r.items {
		out[len(r.items)-1-i] = event
	}
	return out
}

// Stats returns a copy of the per-kind counters.
func (r *Recent) Stats() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.counts))
	for kind, n := range r.counts {
		out[kind] = n
	}
	return out
}
