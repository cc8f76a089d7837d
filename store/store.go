package store

import "sync"

// Store holds a state value S and relays actions A to observers.
//
// State changes are serialized. Every state observer sees each new value in
// mutation order, on the goroutine that made the change. State observers must
// not call Update from inside their callback.
type Store[S, A any] struct {
	mu    sync.RWMutex
	state S

	// writeMu serializes Update together with its notifications
	writeMu sync.Mutex

	obsMu           sync.Mutex
	nextID          uint64
	stateObservers  []observer[S]
	actionObservers []observer[A]
	closed          bool
}

type observer[T any] struct {
	id uint64
	fn func(T)
}

// New creates a store seeded with the initial state
func New[S, A any](initial S) *Store[S, A] {
	return &Store[S, A]{state: initial}
}

// State returns the current state snapshot
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update replaces the state with mutator(current) and notifies state observers
func (s *Store[S, A]) Update(mutator func(S) S) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.state = mutator(s.state)
	snapshot := s.state
	s.mu.Unlock()

	for _, o := range s.stateSnapshot() {
		o.fn(snapshot)
	}
}

// Send delivers the action to the current action observers in subscription order.
// Actions are not buffered or replayed.
func (s *Store[S, A]) Send(action A) {
	s.obsMu.Lock()
	observers := append([]observer[A]{}, s.actionObservers...)
	s.obsMu.Unlock()

	for _, o := range observers {
		o.fn(action)
	}
}

// Subscribe registers fn for state changes. fn is called with the current
// state before Subscribe returns.
func (s *Store[S, A]) Subscribe(fn func(S)) *Subscription {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.obsMu.Lock()
	if s.closed {
		s.obsMu.Unlock()
		return &Subscription{}
	}
	s.nextID++
	id := s.nextID
	s.stateObservers = append(s.stateObservers, observer[S]{id: id, fn: fn})
	s.obsMu.Unlock()

	fn(s.State())

	return newSubscription(func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		s.stateObservers = removeObserver(s.stateObservers, id)
	})
}

// SubscribeActions registers fn for actions sent after this call
func (s *Store[S, A]) SubscribeActions(fn func(A)) *Subscription {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	if s.closed {
		return &Subscription{}
	}
	s.nextID++
	id := s.nextID
	s.actionObservers = append(s.actionObservers, observer[A]{id: id, fn: fn})

	return newSubscription(func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		s.actionObservers = removeObserver(s.actionObservers, id)
	})
}

// Close drops every observer. Later subscriptions are inert.
func (s *Store[S, A]) Close() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.closed = true
	s.stateObservers = nil
	s.actionObservers = nil
}

// Observers reports how many state and action observers are registered
func (s *Store[S, A]) Observers() (state, actions int) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	return len(s.stateObservers), len(s.actionObservers)
}

func (s *Store[S, A]) stateSnapshot() []observer[S] {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	return append([]observer[S]{}, s.stateObservers...)
}

func removeObserver[T any](list []observer[T], id uint64) []observer[T] {
	for i, o := range list {
		if o.id == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// Subscription is the handle returned by Subscribe and SubscribeActions
type Subscription struct {
	once   sync.Once
	cancel func()
}

func newSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Cancel stops delivery. Safe to call more than once.
func (sub *Subscription) Cancel() {
	if sub == nil {
		return
	}
	sub.once.Do(func() {
		if sub.cancel != nil {
			sub.cancel()
		}
	})
}
