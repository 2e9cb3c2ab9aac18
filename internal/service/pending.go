package service

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// PendingRegistrations tracks (email, password) pairs whose registration is
// currently being processed in this process. It only short-circuits double
// submits; the unique index on users.email stays the authority.
type PendingRegistrations struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewPendingRegistrations() *PendingRegistrations {
	return &PendingRegistrations{pending: make(map[string]struct{})}
}

// Acquire marks the pair as in flight. It returns false when the pair is
// already held; otherwise the caller must call release exactly once.
func (p *PendingRegistrations) Acquire(email, password string) (release func(), ok bool) {
	key := pendingKey(email, password)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, busy := p.pending[key]; busy {
		return nil, false
	}
	p.pending[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.pending, key)
			p.mu.Unlock()
		})
	}, true
}

// Len reports how many registrations are in flight.
func (p *PendingRegistrations) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// pendingKey digests the raw pair so plaintext passwords are not kept as
// map keys. The NUL separator keeps ("a-b","c") and ("a","b-c") apart.
func pendingKey(email, password string) string {
	sum := sha256.Sum256([]byte(email + "\x00" + password))
	return hex.EncodeToString(sum[:])
}
