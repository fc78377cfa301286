package rag

import (
	"strings"
	"unicode/utf8"
)

// Splitter cuts text into overlapping chunks of at most chunkSize
// characters with chunkOverlap characters carried between neighbours.
// It prefers paragraph, then line, then word boundaries, and falls
// back to hard character cuts when a span has no separator at all.
// All offsets are counted in runes so multi-byte text never gets cut
// mid-character.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

var separators = []string{"\n\n", "\n", " "}

func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize < 1 {
		chunkSize = 1
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = 0
	}
	return &Splitter{chunkSize: chunkSize, chunkOverlap: chunkOverlap}
}

// Split returns the chunk texts for one document. Identical input and
// configuration always produce identical output.
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= s.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + s.chunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = s.boundaryBefore(runes, start, end)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		next := end - s.chunkOverlap
		if next <= start {
			// Guard against stalling on pathological overlap.
			next = start + 1
		}
		start = next
	}

	return chunks
}

// boundaryBefore finds the latest natural break in (start, limit],
// checking coarser separators first. Without any separator the hard
// limit stands. Offsets are rune indexes into runes.
func (s *Splitter) boundaryBefore(runes []rune, start, limit int) int {
	// Do not shrink the chunk below half its size hunting for a nicer
	// separator; a mid-paragraph cut is fine.
	floor := start + s.chunkSize/2

	window := string(runes[start:limit])
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		// The separators are ASCII, so their byte and rune lengths
		// match; the prefix before them still needs rune counting.
		boundary := start + utf8.RuneCountInString(window[:idx]) + len(sep)
		if boundary > floor {
			return boundary
		}
	}

	return limit
}
