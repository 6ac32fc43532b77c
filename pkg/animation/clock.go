package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = realClock{}
)

// SetClock replaces the package clock. Pass nil to restore system time.
func SetClock(c Clock) {
	clockMu.Lock()
	defer clockMu.Unlock()
	if c == nil {
		clock = realClock{}
	} else {
		clock = c
	}
}

// Now returns the current time from the package clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}
