package config

// Layout constants.
const (
	// DefaultTab is the tab shown on launch.
	DefaultTab = TabTimer

	// ProgressWidth is the preferred width of the auto-stop progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the minimum width of the progress bar.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// MinNoteWidth is the minimum width for note text.
	MinNoteWidth = 10
)

// Display limits.
const (
	// MaxVisibleNotes limits notes shown before scrolling.
	MaxVisibleNotes = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxNoteLength is the maximum note length.
	MaxNoteLength = 280
)
