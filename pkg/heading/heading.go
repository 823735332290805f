// Package heading extracts ATX heading outlines from markdown text.
package heading

import "strings"

// MaxLevel is the deepest heading level the ATX syntax allows.
const MaxLevel = 6

// Heading is a single ATX heading located in a document. Records are
// rebuilt wholesale on every extraction pass and never mutated.
type Heading struct {
	Level int    // count of leading '#' characters, 1-6
	Text  string // remainder after the first run of whitespace, untrimmed
	Line  int    // zero-based source line index
}

// Extract scans text line by line and returns one Heading per line matching
// the ATX pattern: one to six '#' characters, at least one whitespace
// character, then non-empty text. Non-matching lines, including '#' runs of
// seven or more and '#' with no following text, are skipped silently. The
// result is a fresh slice ordered by document position.
func Extract(text string) []Heading {
	if text == "" {
		return nil
	}
	var out []Heading
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		level, body, ok := parseLine(line)
		if !ok {
			continue
		}
		out = append(out, Heading{Level: level, Text: body, Line: i})
	}
	return out
}

// parseLine classifies a single line against the ATX pattern.
func parseLine(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > MaxLevel {
		return 0, "", false
	}
	rest := line[level:]
	sep := 0
	for sep < len(rest) && (rest[sep] == ' ' || rest[sep] == '\t') {
		sep++
	}
	if sep == 0 {
		// '#' glued to text is a tag or plain text, not a heading.
		return 0, "", false
	}
	body := rest[sep:]
	if body == "" {
		return 0, "", false
	}
	return level, body, true
}
