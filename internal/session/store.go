package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultMaxSessions bounds memory when config leaves capacity unset.
	DefaultMaxSessions = 1024

	// DefaultTTL expires idle conversations.
	DefaultTTL = 30 * time.Minute
)

// Store holds conversation sessions in an expiring LRU. All mutation goes
// through Store methods under a single lock, so concurrent chat turns on the
// same session never interleave partial updates.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a session store with the given capacity and idle TTL.
// Non-positive values fall back to the defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Get returns a copy of the session, or false if it does not exist.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return sess.clone(), true
}

// GetOrCreate returns a copy of the session, creating it first when absent.
// An empty id gets a fresh UUID.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getOrCreateLocked(id).clone()
}

// AppendMessage records one conversation turn stamped with the current time,
// creating the session if needed, and returns the session id.
func (s *Store) AppendMessage(id, role, content string) string {
	return s.AppendMessageAt(id, role, content, time.Now())
}

// AppendMessageAt is AppendMessage with a caller-supplied timestamp, for
// clients that report when the message was actually sent.
func (s *Store) AppendMessageAt(id, role, content string, at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	sess.Messages = append(sess.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: at,
	})
	sess.UpdatedAt = time.Now()
	s.sessions.Add(sess.ID, sess)
	return sess.ID
}

// MergeDraft overlays the incoming draft onto the session's pending draft
// and returns a copy of the merged result.
func (s *Store) MergeDraft(id string, incoming *Draft) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	if sess.Draft == nil {
		sess.Draft = &Draft{}
	}
	sess.Draft.MergeFrom(incoming)
	sess.UpdatedAt = time.Now()
	s.sessions.Add(sess.ID, sess)

	merged := *sess.Draft
	return &merged
}

// ClearDraft drops the pending draft, e.g. after the user declines a slot.
func (s *Store) ClearDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return
	}
	sess.Draft = nil
	sess.UpdatedAt = time.Now()
	s.sessions.Add(sess.ID, sess)
}

// AppendBooking records a completed booking and clears the pending draft.
func (s *Store) AppendBooking(id string, record BookingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	sess.Bookings = append(sess.Bookings, record)
	sess.Draft = nil
	sess.UpdatedAt = time.Now()
	s.sessions.Add(sess.ID, sess)
}

// Delete removes a session. Returns true when it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Remove(id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Len()
}

func (s *Store) getOrCreateLocked(id string) *Session {
	if id != "" {
		if sess, ok := s.sessions.Get(id); ok {
			return sess
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	sess := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.sessions.Add(id, sess)
	return sess
}
