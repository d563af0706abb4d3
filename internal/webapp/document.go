package webapp

import (
	"context"
	"sync"
)

// TextField is a Field holding a fixed value.
type TextField string

// Value returns the field text.
func (f TextField) Value() string { return string(f) }

// MapDocument is a Document backed by submitted form values.
// A key that is present with an empty value is a bound, empty field.
type MapDocument map[string]string

// Field looks up the field by id.
func (d MapDocument) Field(id string) (Field, bool) {
	v, ok := d[id]
	if !ok {
		return nil, false
	}
	return TextField(v), true
}

// ListContainer is an in-memory append-only Container.
type ListContainer struct {
	mu    sync.Mutex
	items []string
}

// NewListContainer creates a ListContainer seeded with existing items.
func NewListContainer(items ...string) *ListContainer {
	return &ListContainer{items: append([]string(nil), items...)}
}

// Append adds text to the end of the container.
func (c *ListContainer) Append(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, text)
	return nil
}

// Items returns a copy of the container contents.
func (c *ListContainer) Items(_ context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.items...), nil
}

// MemoryContainerStore keeps ListContainers per session in memory.
type MemoryContainerStore struct {
	mu         sync.Mutex
	containers map[string]*ListContainer
}

// NewMemoryContainerStore creates an empty MemoryContainerStore.
func NewMemoryContainerStore() *MemoryContainerStore {
	return &MemoryContainerStore{containers: make(map[string]*ListContainer)}
}

// Container returns the container id of session, creating it on first use.
func (s *MemoryContainerStore) Container(session, id string) StoredContainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := session + ":" + id
	c, ok := s.containers[key]
	if !ok {
		c = NewListContainer()
		s.containers[key] = c
	}
	return c
}

// AlertRecorder collects alerts in the order they were raised.
type AlertRecorder struct {
	mu     sync.Mutex
	alerts []string
}

// Alert records the message.
func (r *AlertRecorder) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, message)
}

// Alerts returns the recorded messages.
func (r *AlertRecorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.alerts...)
}
