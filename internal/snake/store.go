package snake

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// defaultUpdateBuffer is the per-subscription snapshot buffer size.
const defaultUpdateBuffer = 16

// Store owns the canonical game state. All transitions run under one mutex,
// so callers from a timer goroutine and an input goroutine are serialized
// in arrival order and never observe a partial update.
type Store struct {
	mu     sync.Mutex
	state  State
	food   FoodSource
	seq    uint64
	subs   map[uint64]*Subscription
	nextID uint64
	logger *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for transition events.
func WithLogger(l *log.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithState starts the store from an arbitrary state instead of Reset().
func WithState(st State) StoreOption {
	return func(s *Store) {
		s.state = st
	}
}

// NewStore creates a store holding a fresh game.
func NewStore(food FoodSource, opts ...StoreOption) *Store {
	s := &Store{
		state:  Reset(),
		food:   food,
		subs:   make(map[uint64]*Subscription),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSnapshot(s.seq, s.state)
}

// Tick advances the game by one step.
func (s *Store) Tick() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	if prev.GameOver {
		return newSnapshot(s.seq, prev)
	}

	next := Tick(prev, s.food)
	if next.Score > prev.Score {
		s.logger.Debug("food eaten", "score", next.Score, "len", len(next.Snake), "food", next.Food)
	}
	if next.GameOver {
		s.logger.Info("game over", "score", next.Score, "len", len(next.Snake), "head", next.Head())
	}
	return s.commit(next)
}

// ApplyInput forwards a raw key to the game. Only accepted direction changes
// produce a new snapshot.
func (s *Store) ApplyInput(key Key) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next := ApplyInput(prev, key)
	if next.Direction == prev.Direction {
		return newSnapshot(s.seq, prev)
	}

	s.logger.Debug("direction changed", "from", prev.Direction, "to", next.Direction)
	return s.commit(next)
}

// Reset replaces the state with a fresh game.
func (s *Store) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("game reset", "previous_score", s.state.Score)
	return s.commit(Reset())
}

// commit stores next and publishes it. Caller holds mu.
func (s *Store) commit(next State) Snapshot {
	s.state = next
	s.seq++
	snap := newSnapshot(s.seq, next)
	for _, sub := range s.subs {
		sub.send(snap)
	}
	return snap
}

// Subscribe registers an observer. The current snapshot is delivered first,
// followed by one snapshot per state change in commit order. A slow reader
// loses the oldest pending snapshots, never the newest.
// buffer <= 0 selects a default size.
func (s *Store) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = defaultUpdateBuffer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sub := &Subscription{
		id:      s.nextID,
		store:   s,
		updates: make(chan Snapshot, buffer),
		done:    make(chan struct{}),
	}
	s.subs[sub.id] = sub
	sub.send(newSnapshot(s.seq, s.state))
	return sub
}

// unsubscribe removes sub and closes its channels. Safe to call repeatedly.
func (s *Store) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[sub.id]; !ok {
		return
	}
	delete(s.subs, sub.id)
	close(sub.done)
	close(sub.updates)
}

// Subscription delivers snapshots from a Store.
type Subscription struct {
	id      uint64
	store   *Store
	updates chan Snapshot
	done    chan struct{}
}

// Updates returns the snapshot channel. It is closed by Close.
func (sub *Subscription) Updates() <-chan Snapshot {
	return sub.updates
}

// Done returns a channel that closes when the subscription ends.
func (sub *Subscription) Done() <-chan struct{} {
	return sub.done
}

// Close stops delivery. No snapshot is sent after Close returns.
func (sub *Subscription) Close() {
	sub.store.unsubscribe(sub)
}

// send delivers a snapshot without blocking. If the buffer is full the
// oldest pending snapshot is dropped. Caller holds the store mutex.
func (sub *Subscription) send(snap Snapshot) {
	select {
	case sub.updates <- snap:
		return
	default:
	}

	select {
	case <-sub.updates:
	default:
	}

	select {
	case sub.updates <- snap:
	default:
	}
}
