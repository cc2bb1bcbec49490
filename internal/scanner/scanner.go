// Package scanner extracts flashcards from markdown files. Two card forms
// are recognized: one-line "prompt: answer #flashcard" cards and multi-line
// cards opened by a "prompt #flashcard" heading and closed by a thematic
// break. Files containing the @carddown-ignore marker are skipped entirely.
package scanner

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/phrazzld/carddown/internal/domain"
)

const ignoreMarker = "@carddown-ignore"

var (
	cardRE        = regexp.MustCompile(`#flashcard|🧠`)
	oneLineCardRE = regexp.MustCompile(`^(.*):(.*)`)
	tagRE         = regexp.MustCompile(`#[\w-]+`)
	endOfCardRE   = regexp.MustCompile(`^(\s*---\s*|\s*-\s*-\s*-\s*|\s*\*\*\*\s*|\s*\*\s*\*\s*\*\s*)$`)
)

// parseTags collects the #tags on a line, dropping the flashcard marker itself.
func parseTags(line string) []string {
	var tags []string
	for _, m := range tagRE.FindAllString(line, -1) {
		tag := m[1:]
		if tag == "" || tag == "flashcard" {
			continue
		}
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}

// stripTags removes the card marker and any trailing tags from a line.
func stripTags(line string) string {
	if i := strings.IndexAny(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "🧠"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// parseState accumulates one multi-line card while scanning.
type parseState struct {
	cardLines []string
	tags      []string
	prompt    string
	firstLine int
	open      bool
}

// ParseFile extracts every card recognized in the given file. Card ids are
// content hashes over the canonical card text: the stripped line for
// one-line cards, the joined card lines for multi-line cards.
func ParseFile(path string) ([]domain.Card, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	contents := string(raw)
	if strings.Contains(contents, ignoreMarker) {
		return nil, nil
	}

	var cards []domain.Card
	var state parseState
	for lineNumber, line := range strings.Split(contents, "\n") {
		switch {
		case cardRE.MatchString(line):
			if caps := oneLineCardRE.FindStringSubmatch(line); caps != nil {
				prompt := strings.TrimSpace(caps[1])
				if prompt == "" {
					continue
				}
				canonical := stripTags(line)
				cards = append(cards, domain.Card{
					ID:       domain.NewCardID(canonical),
					File:     path,
					Line:     lineNumber,
					Prompt:   prompt,
					Response: []string{stripTags(caps[2])},
					Tags:     parseTags(caps[2]),
				})
				state = parseState{}
				continue
			}
			// Only the #flashcard marker opens a multi-line card.
			if !strings.Contains(line, "#flashcard") {
				continue
			}
			prompt := stripTags(line)
			if prompt == "" {
				continue
			}
			state = parseState{
				cardLines: []string{prompt},
				tags:      parseTags(line),
				prompt:    prompt,
				firstLine: lineNumber,
				open:      true,
			}
		case endOfCardRE.MatchString(line) && state.open:
			cards = append(cards, domain.Card{
				ID:       domain.NewCardID(strings.Join(state.cardLines, "\n")),
				File:     path,
				Line:     state.firstLine,
				Prompt:   state.prompt,
				Response: state.cardLines[1:],
				Tags:     state.tags,
			})
			state = parseState{}
		case state.open:
			state.cardLines = append(state.cardLines, line)
		}
	}
	return cards, nil
}
