package userlock

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestLockSerializesPerUser(t *testing.T) {
	locker := New()
	userID := uuid.New()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := locker.Lock(userID)
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("counter = %d, want %d", counter, workers)
	}
}

func TestLockIsIndependentAcrossUsers(t *testing.T) {
	locker := New()
	a := uuid.New()
	b := uuid.New()

	// Holding a's lock must not block b.
	unlockA := locker.Lock(a)
	done := make(chan struct{})
	go func() {
		defer close(done)
		locker.Lock(b)()
	}()
	<-done
	unlockA()
}
