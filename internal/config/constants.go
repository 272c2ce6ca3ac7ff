package config

import "time"

// Timer cadence.
const (
	TickInterval       = time.Second
	AnnounceEvery      = 30
	AutoStopAfter      = 60 * 60
	SecondsPerMinute   = 60
	ThirtySecondsPhase = 30
)

// Tabs.
const (
	TabTimer = iota
	TabNotes
)

// Database/application settings.
const (
	AppName    = "timetell"
	DBFileName = "timetell.db"
	LogFile    = "timetell.log"
)

// Setting keys.
const (
	SettingLaunchCount = "launch_count"
	SettingTheme       = "theme"
	SettingVoiceMuted  = "voice_muted"
)
