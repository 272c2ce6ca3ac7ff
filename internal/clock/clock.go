// Package clock abstracts interval scheduling so the timer can be driven by
// the wall clock in production and by hand in tests.
package clock

import (
	"sync"
	"time"
)

// Ticker is a cancellable periodic callback.
type Ticker interface {
	// Stop cancels the ticker. Once Stop returns the callback is not started
	// again. It never waits for an in-flight callback.
	Stop()
}

// Clock schedules periodic callbacks.
type Clock interface {
	// Every invokes f immediately and then once per d until the returned
	// Ticker is stopped. Calls happen on a goroutine owned by the clock.
	Every(d time.Duration, f func()) Ticker
	Now() time.Time
}

// System is the Clock backed by the time package.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Every(d time.Duration, f func()) Ticker {
	t := &systemTicker{done: make(chan struct{})}
	go t.run(d, f)
	return t
}

type systemTicker struct {
	once sync.Once
	done chan struct{}
}

func (t *systemTicker) run(d time.Duration, f func()) {
	tk := time.NewTicker(d)
	defer tk.Stop()

	if t.stopped() {
		return
	}
	f()
	for {
		select {
		case <-t.done:
			return
		case <-tk.C:
			// select picks randomly when both are ready
			if t.stopped() {
				return
			}
			f()
		}
	}
}

func (t *systemTicker) stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *systemTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}
