package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Header       lipgloss.Style
	Clock        lipgloss.Style
	Running      lipgloss.Style
	Paused       lipgloss.Style
	Note         lipgloss.Style
	RealizedNote lipgloss.Style
	Tag          lipgloss.Style
	Input        lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style
	Highlight    lipgloss.Style
	Error        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("33"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
		Running:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Note:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RealizedNote: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Tag:          lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1).Width(50),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("62"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
		Running:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Paused:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Note:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		RealizedNote: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Tag:          lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	},
}

// themeOrder is the cycle order for the theme key.
var themeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

var currentThemeKey = "default"

func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = t
	currentThemeKey = name
	return true
}

// CurrentThemeKey returns the key of the active theme.
func CurrentThemeKey() string {
	return currentThemeKey
}

// NextTheme returns the theme key after name in cycle order.
func NextTheme(name string) string {
	for i, key := range themeOrder {
		if key == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
