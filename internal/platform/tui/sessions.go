package tui

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionInfo describes one connected SSH player.
type SessionInfo struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Remote    string    `json:"remote"`
	Started   time.Time `json:"started"`
	Games     int       `json:"games"`
	LastScore int       `json:"last_score"`
	BestScore int       `json:"best_score"`
}

// Tracker records live SSH sessions. It is safe for concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string]*SessionInfo
	now      func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		sessions: make(map[string]*SessionInfo),
		now:      time.Now,
	}
}

// Add registers a new session and returns its ID.
func (t *Tracker) Add(user, remote string) string {
	id := uuid.NewString()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[id] = &SessionInfo{
		ID:      id,
		User:    user,
		Remote:  remote,
		Started: t.now(),
	}
	return id
}

// GameOver records a finished game for id. Unknown IDs are ignored.
func (t *Tracker) GameOver(id string, score int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[id]
	if !ok {
		return
	}
	s.Games++
	s.LastScore = score
	s.BestScore = max(s.BestScore, score)
}

// Remove forgets id.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, id)
}

// Get returns a copy of the session with id.
func (t *Tracker) Get(id string) (SessionInfo, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[id]
	if !ok {
		return SessionInfo{}, false
	}
	return *s, true
}

// List returns copies of all sessions, oldest first.
func (t *Tracker) List() []SessionInfo {
	t.mu.RLock()
	out := make([]SessionInfo, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, *s)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

// Len returns the number of live sessions.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
