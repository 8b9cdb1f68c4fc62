package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("local"), lm.GetLock("local"))
	assert.NotSame(t, lm.GetLock("local"), lm.GetLock("bot-1"))
}

func TestWithLock_SerializesSameKey(t *testing.T) {
	lm := NewLockManager()

	const goroutines = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = lm.WithLock("local", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestWithLock_PropagatesError(t *testing.T) {
	lm := NewLockManager()
	wantErr := errors.New("boom")

	err := lm.WithLock("local", func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestWithLock_ReleasesLock(t *testing.T) {
	lm := NewLockManager()

	_ = lm.WithLock("local", func() error { return nil })

	done := make(chan struct{})
	go func() {
		_ = lm.WithLock("local", func() error { return nil })
		close(done)
	}()
	<-done
}
