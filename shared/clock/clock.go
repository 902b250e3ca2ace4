// Package clock lets time-dependent rules take "now" from an injected source.
// Production wiring uses Real; tests use Fake.
package clock

import (
	"rimbest/shared/timezone"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// After returns a channel that receives once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return timezone.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Fake is a manually driven Clock. After advances the fake time by d and
// fires immediately so waits never block a test.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

func (f *Fake) After(d time.Duration) <-chan time.Time {
	f.Advance(d)

	ch := make(chan time.Time, 1)
	ch <- f.Now()

	return ch
}
