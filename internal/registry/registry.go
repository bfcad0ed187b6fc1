package registry

import (
	"sync"
)

// entry holds the live state for one session. The member set and the timer
// fields are guarded independently so a scheduler tick on the timer never
// blocks a join or leave on the member set.
type entry struct {
	membersMu sync.Mutex
	members   map[string]struct{}

	timerMu             sync.Mutex
	remainingSeconds    float64
	turnDurationSeconds int
}

// Registry is a concurrency-safe table of active writing sessions keyed by
// story ID. It holds no business rules; callers decide when sessions are
// created, rotated, and torn down.
//
// Operations on an absent key return ErrSessionNotFound, except RemoveSession
// which is a no-op. The registry never fabricates a session on read.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty session registry
func New() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// AddSession adds a session for key if one does not already exist. It returns
// true if the session was newly created; an existing session is left untouched.
func (r *Registry) AddSession(key string, turnDurationSeconds int, initialRemainingSeconds float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; ok {
		return false
	}

	if initialRemainingSeconds < 0 {
		initialRemainingSeconds = 0
	}

	r.entries[key] = &entry{
		members:             make(map[string]struct{}),
		remainingSeconds:    initialRemainingSeconds,
		turnDurationSeconds: turnDurationSeconds,
	}
	return true
}

// RemoveSession deletes the session for key. Removing an absent key is a no-op.
func (r *Registry) RemoveSession(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
}

// SessionExists reports whether a session exists for key
func (r *Registry) SessionExists(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[key]
	return ok
}

// SessionIsEmpty reports whether the session for key has no members
func (r *Registry) SessionIsEmpty(key string) (bool, error) {
	e, err := r.lookup(key)
	if err != nil {
		return false, err
	}

	e.membersMu.Lock()
	defer e.membersMu.Unlock()

	return len(e.members) == 0, nil
}

// AddMember adds a connection ID to the session's member set
func (r *Registry) AddMember(key, connID string) error {
	e, err := r.lookup(key)
	if err != nil {
		return err
	}

	e.membersMu.Lock()
	defer e.membersMu.Unlock()

	e.members[connID] = struct{}{}
	return nil
}

// RemoveMember removes a connection ID from the session's member set.
// Removing a connection that is not a member is a no-op.
func (r *Registry) RemoveMember(key, connID string) error {
	e, err := r.lookup(key)
	if err != nil {
		return err
	}

	e.membersMu.Lock()
	defer e.membersMu.Unlock()

	delete(e.members, connID)
	return nil
}

// Members returns a snapshot of the session's member connection IDs
func (r *Registry) Members(key string) ([]string, error) {
	e, err := r.lookup(key)
	if err != nil {
		return nil, err
	}

	e.membersMu.Lock()
	defer e.membersMu.Unlock()

	members := make([]string, 0, len(e.members))
	for connID := range e.members {
		members = append(members, connID)
	}
	return members, nil
}

// RemainingSeconds returns the session's current countdown value
func (r *Registry) RemainingSeconds(key string) (float64, error) {
	e, err := r.lookup(key)
	if err != nil {
		return 0, err
	}

	e.timerMu.Lock()
	defer e.timerMu.Unlock()

	return e.remainingSeconds, nil
}

// DecrementRemaining reduces the session's countdown by delta seconds. The
// stored value is clamped at zero so a reader never observes a negative
// timer. It returns the clamped remaining time and whether the countdown
// expired on this decrement.
func (r *Registry) DecrementRemaining(key string, delta float64) (float64, bool, error) {
	e, err := r.lookup(key)
	if err != nil {
		return 0, false, err
	}

	e.timerMu.Lock()
	defer e.timerMu.Unlock()

	e.remainingSeconds -= delta
	if e.remainingSeconds <= 0 {
		e.remainingSeconds = 0
		return 0, true, nil
	}
	return e.remainingSeconds, false, nil
}

// ResetRemaining sets the session's countdown back to its full turn duration
func (r *Registry) ResetRemaining(key string) error {
	e, err := r.lookup(key)
	if err != nil {
		return err
	}

	e.timerMu.Lock()
	defer e.timerMu.Unlock()

	e.remainingSeconds = float64(e.turnDurationSeconds)
	return nil
}

// TurnDuration returns the session's fixed turn duration in seconds
func (r *Registry) TurnDuration(key string) (int, error) {
	e, err := r.lookup(key)
	if err != nil {
		return 0, err
	}

	// Fixed for the lifetime of the entry, no timer lock needed.
	return e.turnDurationSeconds, nil
}

// SessionKeys returns a snapshot of all active session keys. Sessions added
// or removed after the snapshot is taken are not reflected in it.
func (r *Registry) SessionKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	return keys
}

func (r *Registry) lookup(key string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}
