package clock

import (
	"sync"
	"time"
)

// Fake is a manually driven Clock for tests. Nothing fires until Fire is
// called; the first Fire after Every stands for the immediate tick.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

// NewFake returns a Fake clock positioned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

type fakeTicker struct {
	clock    *Fake
	interval time.Duration
	f        func()
	stopped  bool
}

func (t *fakeTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}

func (c *Fake) Every(d time.Duration, f func()) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{clock: c, interval: d, f: f}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward without firing tickers.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Fire invokes every live ticker's callback once, outside the clock lock.
func (c *Fake) Fire() {
	for _, f := range c.live() {
		f()
	}
}

// FireN calls Fire n times.
func (c *Fake) FireN(n int) {
	for i := 0; i < n; i++ {
		c.Fire()
	}
}

// Active returns the number of tickers that have not been stopped.
func (c *Fake) Active() int {
	return len(c.live())
}

// Scheduled returns the number of tickers ever created.
func (c *Fake) Scheduled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *Fake) live() []func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []func()
	for _, t := range c.tickers {
		if !t.stopped {
			out = append(out, t.f)
		}
	}
	return out
}
