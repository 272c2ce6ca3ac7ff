package timer

// Speaker is the announcement sink the Manager talks to.
//
//go:generate mockgen -source=speaker.go -destination=mock_speaker_test.go -package=timer
type Speaker interface {
	// Speaking reports whether an announcement is still in progress.
	Speaking() bool
	// Speak starts an announcement and returns without waiting for it.
	Speak(text string)
}
