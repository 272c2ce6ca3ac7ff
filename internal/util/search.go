package util

import (
	"regexp"
	"strings"
)

// NoteQuery represents the parsed components of a notes filter string.
type NoteQuery struct {
	Tags   []string
	Status []string
	Text   []string
}

var (
	tagRegex    = regexp.MustCompile(`tag:(\w+)`)
	statusRegex = regexp.MustCompile(`status:(\w+)`)
)

// ParseNoteQuery breaks down a raw filter string into its structured components.
func ParseNoteQuery(query string) NoteQuery {
	nq := NoteQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	nq.Tags = extract(tagRegex)
	nq.Status = extract(statusRegex)
	nq.Text = strings.Fields(strings.ToLower(query))

	return nq
}

// Empty reports whether the query filters nothing.
func (q NoteQuery) Empty() bool {
	return len(q.Tags) == 0 && len(q.Status) == 0 && len(q.Text) == 0
}

// Match reports whether a note with the given text and realized flag passes
// the filter. Status accepts "done"/"realized" and "open".
func (q NoteQuery) Match(text string, realized bool) bool {
	if len(q.Status) > 0 {
		ok := false
		for _, s := range q.Status {
			switch s {
			case "done", "realized":
				ok = ok || realized
			case "open":
				ok = ok || !realized
			}
		}
		if !ok {
			return false
		}
	}
	if len(q.Tags) > 0 {
		have := make(map[string]bool)
		for _, tag := range ExtractTags(text) {
			have[tag] = true
		}
		for _, tag := range q.Tags {
			if !have[tag] {
				return false
			}
		}
	}
	lower := strings.ToLower(text)
	for _, word := range q.Text {
		if !strings.Contains(lower, word) {
			return false
		}
	}
	return true
}
