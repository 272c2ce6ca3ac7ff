// Package speech provides announcement sinks: OS text-to-speech, a mute
// wrapper, a silent sink and an in-memory recorder.
package speech

import (
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/akyairhashvil/timetell/internal/util"
)

// Speaker is a fire-and-forget announcement sink.
type Speaker interface {
	Speaking() bool
	Speak(text string)
}

// Silent discards everything.
type Silent struct{}

func (Silent) Speaking() bool { return false }
func (Silent) Speak(string) {}

// Known TTS binaries in lookup order.
var candidates = []string{"say", "espeak-ng", "espeak", "spd-say"}

// Command speaks through an external text-to-speech binary.
type Command struct {
	name  string
	args  []string
	busy  atomic.Bool
	start func(name string, args ...string) (wait func() error, err error)
}

// NewCommand returns a Command that runs name with args followed by the text.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args, start: startProcess}
}

func startProcess(name string, args ...string) (func() error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

// Name returns the binary the Command runs.
func (c *Command) Name() string {
	return c.name
}

// Speaking reports whether a previous phrase is still being spoken.
func (c *Command) Speaking() bool {
	return c.busy.Load()
}

// Speak starts the binary and returns without waiting. A phrase arriving
// while another is in flight is dropped.
func (c *Command) Speak(text string) {
	if text == "" || !c.busy.CompareAndSwap(false, true) {
		return
	}
	args := append(append([]string(nil), c.args...), text)
	wait, err := c.start(c.name, args...)
	if err != nil {
		c.busy.Store(false)
		util.LogError("speech: start "+c.name, err)
		return
	}
	go func() {
		util.LogError("speech: "+c.name, wait())
		c.busy.Store(false)
	}()
}

// Detect returns a Command for preferred, or for the first known binary on
// PATH, falling back to Silent.
func Detect(preferred string) Speaker {
	return detect(preferred, exec.LookPath)
}

func detect(preferred string, lookPath func(string) (string, error)) Speaker {
	names := candidates
	if preferred != "" {
		names = []string{preferred}
	}
	for _, name := range names {
		if path, err := lookPath(name); err == nil {
			return NewCommand(path)
		}
	}
	return Silent{}
}

// Mutable wraps a Speaker with a mute switch.
type Mutable struct {
	Speaker
	muted atomic.Bool
}

// NewMutable wraps s, starting muted if requested.
func NewMutable(s Speaker, muted bool) *Mutable {
	m := &Mutable{Speaker: s}
	m.muted.Store(muted)
	return m
}

func (m *Mutable) Speak(text string) {
	if m.muted.Load() {
		return
	}
	m.Speaker.Speak(text)
}

func (m *Mutable) Muted() bool {
	return m.muted.Load()
}

func (m *Mutable) SetMuted(muted bool) {
	m.muted.Store(muted)
}

// Toggle flips the mute switch and returns the new value.
func (m *Mutable) Toggle() bool {
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Recorder remembers every phrase it is given.
type Recorder struct {
	mu      sync.Mutex
	phrases []string
	busy    bool
}

func (r *Recorder) Speaking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

func (r *Recorder) Speak(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phrases = append(r.phrases, text)
}

// SetBusy makes the recorder report an announcement in progress.
func (r *Recorder) SetBusy(busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = busy
}

// Phrases returns a copy of everything spoken so far.
func (r *Recorder) Phrases() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.phrases...)
}

// Last returns the most recent phrase, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.phrases) == 0 {
		return ""
	}
	return r.phrases[len(r.phrases)-1]
}
