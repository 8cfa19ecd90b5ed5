package assessment

import (
	"errors"
	"sync"
	"time"
)

// ErrNoResult means no screening has completed yet for the caller, so there
// is nothing to export.
var ErrNoResult = errors.New("no screening result available")

type storedResult struct {
	result  *Result
	expires time.Time
}

// Store keeps the most recent screening per browser session, in memory only.
// Session entries expire after the TTL; a single latest slot backs sessions
// that lost their cookie, matching what a single-operator deployment needs.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*storedResult
	latest   *Result
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*storedResult),
		now:      time.Now,
	}
}

// Put records a completed screening. The latest slot is always updated;
// the per-session entry only when a token is present.
func (s *Store) Put(token string, res *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for t, e := range s.sessions {
		if now.After(e.expires) {
			delete(s.sessions, t)
		}
	}

	if token != "" {
		s.sessions[token] = &storedResult{result: res, expires: now.Add(s.ttl)}
	}
	s.latest = res
}

// Get returns the caller's most recent screening, preferring their session
// entry and falling back to the global latest.
func (s *Store) Get(token string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[token]; ok && token != "" {
		if s.now().After(e.expires) {
			delete(s.sessions, token)
		} else {
			return e.result, nil
		}
	}
	if s.latest != nil {
		return s.latest, nil
	}
	return nil, ErrNoResult
}
