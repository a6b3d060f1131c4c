package userlock

import (
	"sync"

	"github.com/google/uuid"
)

// Locker serializes work per user ID. The activity entry points and the
// inactivity sweep share one Locker so a user's evaluation never
// interleaves with that same user's alert resolution.
type Locker struct {
	mu sync.Map // uuid.UUID -> *sync.Mutex
}

func New() *Locker {
	return &Locker{}
}

// Lock acquires the mutex for userID and returns its unlock func.
//
//	defer locker.Lock(userID)()
func (l *Locker) Lock(userID uuid.UUID) func() {
	v, _ := l.mu.LoadOrStore(userID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
