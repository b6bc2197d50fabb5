package propgen

import (
	"regexp"
	"strings"
)

// Section represents a titled region of a markdown document. A section runs
// from its heading to the next heading of any level. Text before the first
// heading becomes an untitled preamble section with Level 0.
type Section struct {
	Level   int    `json:"level"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// SplitSections parses markdown into heading-delimited sections (H1-H6).
// Headings inside fenced code blocks are ignored. A document with no
// headings yields a single untitled section holding the whole text.
// Empty input yields nil.
func SplitSections(markdown string) []Section {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	lines := strings.Split(markdown, "\n")

	var sections []Section
	current := Section{}
	var body []string
	inFence := false

	flush := func() {
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		body = nil
		// Drop an empty untitled preamble.
		if current.Title == "" && current.Level == 0 && current.Content == "" {
			return
		}
		sections = append(sections, current)
	}

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			body = append(body, line)
			continue
		}
		if !inFence {
			if m := headingRe.FindStringSubmatch(line); m != nil {
				flush()
				current = Section{Level: len(m[1]), Title: strings.TrimSpace(m[2])}
				continue
			}
		}
		body = append(body, line)
	}
	flush()

	return sections
}
