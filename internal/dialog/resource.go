// Package dialog holds the data carried from the overworld into a
// conversation.
package dialog

// Greeting is the only line NPCs say for now.
const Greeting = "Hello there!"

// Resource identifies who the player is talking to.
type Resource struct {
	NPCName string
	Sprite  string
}

// Store keeps the resource staged for the Dialog state. A new Stage
// replaces the previous resource.
type Store struct {
	current *Resource
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Stage replaces the staged resource.
func (s *Store) Stage(r Resource) {
	s.current = &r
}

// Current returns the staged resource, if any.
func (s *Store) Current() (Resource, bool) {
	if s.current == nil {
		return Resource{}, false
	}
	return *s.current, true
}

// Clear drops the staged resource.
func (s *Store) Clear() {
	s.current = nil
}
