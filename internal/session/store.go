package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store mantém as sessões ativas em memória, isoladas por ID. Sessões
// paradas além do TTL são removidas pelo janitor.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Create() *Session {
	s := New()
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(s.LastSeen()) > st.ttl {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, false
	}
	s.Touch()
	return s, true
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := st.purgeExpired()
				if removed > 0 {
					logrus.Debugf("Janitor removeu %d sessões expiradas", removed)
				}
			}
		}
	}()
}

func (st *Store) purgeExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if time.Since(s.LastSeen()) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
