// Package timer implements the speaking count-up timer: elapsed-time
// tracking, announcements every thirty seconds and the one-hour auto-stop.
package timer

import (
	"fmt"
	"sync"

	"github.com/akyairhashvil/timetell/internal/clock"
	"github.com/akyairhashvil/timetell/internal/config"
	"github.com/akyairhashvil/timetell/internal/models"
)

// Manager owns the timing session. All mutation goes through Start, Pause,
// Reset, the tick callback and UpdateTime.
type Manager struct {
	mu      sync.Mutex
	clock   clock.Clock
	speaker Speaker
	session models.Session
	ticker  clock.Ticker
	// gen identifies the live ticker; callbacks from older tickers are ignored.
	gen       uint64
	announced string
	subs      []chan models.Session
	// pubMu orders deliveries so subscribers never see an older session last.
	pubMu sync.Mutex
}

// NewManager returns an idle Manager at zero.
func NewManager(c clock.Clock, s Speaker) *Manager {
	if c == nil {
		c = clock.System
	}
	return &Manager{clock: c, speaker: s}
}

// Start begins ticking. It is a no-op while already running.
func (m *Manager) Start() {
	m.mu.Lock()
	if m.session.Running {
		m.mu.Unlock()
		return
	}
	m.session.Running = true
	m.gen++
	gen := m.gen
	m.ticker = m.clock.Every(config.TickInterval, func() { m.tick(gen) })
	m.mu.Unlock()

	m.publish()
}

// Pause stops ticking and keeps the elapsed time. It is a no-op while idle.
func (m *Manager) Pause() {
	m.mu.Lock()
	changed := m.pauseLocked()
	m.mu.Unlock()

	if changed {
		m.publish()
	}
}

// Reset pauses and zeroes the elapsed time.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.pauseLocked()
	m.session.ElapsedSeconds = 0
	m.announced = ""
	m.mu.Unlock()

	m.publish()
}

func (m *Manager) pauseLocked() bool {
	if !m.session.Running {
		return false
	}
	m.session.Running = false
	m.gen++
	if m.ticker != nil {
		m.ticker.Stop()
		m.ticker = nil
	}
	return true
}

func (m *Manager) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || !m.session.Running {
		m.mu.Unlock()
		return
	}
	phrase := m.updateLocked(m.session.ElapsedSeconds + 1)
	m.mu.Unlock()

	m.speak(phrase)
	m.publish()
}

// UpdateTime commits totalSeconds as the elapsed time and applies the
// announcement and auto-stop rules. The tick handler goes through here too.
func (m *Manager) UpdateTime(totalSeconds int) {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	m.mu.Lock()
	phrase := m.updateLocked(totalSeconds)
	m.mu.Unlock()

	m.speak(phrase)
	m.publish()
}

// updateLocked returns the phrase to announce, or "".
func (m *Manager) updateLocked(total int) string {
	m.session.ElapsedSeconds = total

	var phrase string
	if total > 0 && total%config.AnnounceEvery == 0 && total <= config.AutoStopAfter {
		phrase = Phrase(m.session.Minutes(), m.session.Seconds())
	}
	if total >= config.AutoStopAfter {
		m.pauseLocked()
	}
	return phrase
}

func (m *Manager) speak(phrase string) {
	if phrase == "" || m.speaker == nil {
		return
	}
	if m.speaker.Speaking() {
		return
	}
	m.speaker.Speak(phrase)

	m.mu.Lock()
	m.announced = phrase
	m.mu.Unlock()
}

// Phrase renders the spoken form of an elapsed time. Only whole minutes and
// the half-minute mark are spoken.
func Phrase(minutes, seconds int) string {
	var out string
	if minutes > 0 {
		unit := "minutes"
		if minutes == 1 {
			unit = "minute"
		}
		out = fmt.Sprintf("%d %s", minutes, unit)
	}
	if seconds == config.ThirtySecondsPhase {
		out += " and thirty seconds"
	}
	return out
}

// Snapshot returns the latest committed session.
func (m *Manager) Snapshot() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *Manager) Minutes() int { return m.Snapshot().Minutes() }

func (m *Manager) Seconds() int { return m.Snapshot().Seconds() }

func (m *Manager) Running() bool { return m.Snapshot().Running }

// LastAnnouncement returns the last phrase handed to the speaker since the
// previous reset.
func (m *Manager) LastAnnouncement() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.announced
}

// Subscribe returns a channel that receives the session after every change.
// Slow readers only see the latest value.
func (m *Manager) Subscribe() <-chan models.Session {
	ch := make(chan models.Session, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) publish() {
	m.pubMu.Lock()
	defer m.pubMu.Unlock()

	m.mu.Lock()
	s := m.session
	subs := m.subs
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
