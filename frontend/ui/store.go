package ui

import "sync"

// Store holds the current State and fans every change out to subscribers.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

func NewStore(initial State) *Store {
	return &Store{
		state:       initial,
		subscribers: make(map[int]func(State)),
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces action into the state and returns the new state.
// Subscribers run after the lock is released.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	state := s.state
	subscribers := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
	return state
}

// Subscribe registers fn for state changes. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
