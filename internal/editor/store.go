package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTTL is how long an untouched editor is kept.
const DefaultIdleTTL = 24 * time.Hour

// Store keeps editors in memory, keyed by session editor id.
type Store struct {
	opts Options
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	editors map[string]*Editor
}

// NewStore creates a store whose editors are built with opts. A ttl of zero
// or less uses DefaultIdleTTL.
func NewStore(opts Options, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &Store{
		opts:    opts,
		ttl:     ttl,
		now:     time.Now,
		editors: make(map[string]*Editor),
	}
}

// GetOrCreate returns the editor for id, creating a fresh one (with a new
// id) when id is empty or unknown. The returned editor's ID is the one the
// caller should keep in the session.
func (s *Store) GetOrCreate(id string) *Editor {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(now)

	if e, ok := s.editors[id]; ok {
		e.touch(now)
		return e
	}

	e := New(uuid.NewString(), s.opts)
	e.touch(now)
	s.editors[e.ID()] = e
	return e
}

// Get returns the editor for id if it is still alive.
func (s *Store) Get(id string) (*Editor, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(now)

	e, ok := s.editors[id]
	if ok {
		e.touch(now)
	}
	return e, ok
}

// Len returns the number of live editors.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.editors)
}

// sweep drops editors idle for longer than the ttl. Callers hold s.mu.
func (s *Store) sweep(now time.Time) {
	for id, e := range s.editors {
		if e.idleSince(now) > s.ttl {
			delete(s.editors, id)
		}
	}
}
