package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler handles a key press and reports whether it consumed it.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Tabs        []int
	Priority    int
}

func (b KeyBinding) AppliesToTab(tab int) bool {
	if len(b.Tabs) == 0 {
		return true
	}
	for _, t := range b.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToTab(m.tab) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForTab(tab int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToTab(tab) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForTab(tab int) string {
	bindings := r.GetBindingsForTab(tab)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
