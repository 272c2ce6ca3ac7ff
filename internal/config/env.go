package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds environment-driven configuration.
type Config struct {
	// DataDir overrides the default data directory.
	DataDir string
	// TTSCommand names the text-to-speech binary. Empty means autodetect.
	TTSCommand string
	// Muted starts the app with announcements silenced.
	Muted bool
	// Theme names the initial theme when none is stored.
	Theme string
}

// Load reads configuration from environment variables.
func Load() Config {
	var cfg Config
	cfg.DataDir = strings.TrimSpace(os.Getenv("TIMETELL_DATA_DIR"))
	cfg.TTSCommand = strings.TrimSpace(os.Getenv("TIMETELL_TTS"))
	if v := strings.TrimSpace(os.Getenv("TIMETELL_MUTE")); v != "" {
		if muted, err := strconv.ParseBool(v); err == nil {
			cfg.Muted = muted
		}
	}
	cfg.Theme = strings.TrimSpace(os.Getenv("TIMETELL_THEME"))
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	return cfg
}
