package chunker

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSize is the chunk window length in characters.
	DefaultSize = 1000

	// minKeptRunes is the stripped length a window must exceed to be
	// kept. Windows at or below it are mostly whitespace or too short
	// to be worth retrieving.
	minKeptRunes = 50
)

// Windows slices text into consecutive non-overlapping windows of at most
// size characters, starting at offset 0. The last window may be shorter.
// Concatenating the returned windows reproduces text exactly. Boundaries
// are purely positional and may split a word or sentence.
func Windows(text string, size int) []string {
	if size <= 0 {
		size = DefaultSize
	}

	runes := []rune(text)
	var windows []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
	}
	return windows
}

// Split chunks each document into fixed-size windows and drops windows
// whose whitespace-stripped length is not above the minimum. Kept chunks
// are the original windows, not the stripped ones, so document text is
// preserved verbatim inside each chunk.
func Split(docs []string, size int) []string {
	var chunks []string
	for _, doc := range docs {
		for _, window := range Windows(doc, size) {
			if utf8.RuneCountInString(strings.TrimSpace(window)) > minKeptRunes {
				chunks = append(chunks, window)
			}
		}
	}
	return chunks
}
