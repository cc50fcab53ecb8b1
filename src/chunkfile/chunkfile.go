// Package chunkfile reads and writes the processed documents file, the
// flat-file serialization of all chunks produced by ingestion. The format
// is fixed: each chunk is preceded by a "=== CHUNK <n> ===" marker line
// and followed by a 50-character "=" separator line. There is no schema
// version; re-ingesting overwrites the whole file.
package chunkfile

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const chunkMarker = "=== CHUNK"

var separator = strings.Repeat("=", 50)

// Write serializes chunks in file order with 1-based markers.
func Write(w io.Writer, chunks []string) error {
	for i, chunk := range chunks {
		if _, err := fmt.Fprintf(w, "%s %d ===\n%s\n\n%s\n\n", chunkMarker, i+1, chunk, separator); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes chunks to path, replacing any previous file.
func WriteFile(path string, chunks []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, chunks); err != nil {
		return err
	}
	return f.Close()
}

// Read parses a processed documents stream back into chunks. Segments are
// split on the literal chunk marker; the first segment (before any
// marker) is discarded, each remaining segment loses its marker line, and
// separator runs plus surrounding whitespace are stripped. Empty segments
// are skipped.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var chunks []string
	parts := strings.Split(string(data), chunkMarker)
	for _, part := range parts[1:] {
		lines := strings.Split(part, "\n")
		content := strings.TrimSpace(strings.Join(lines[1:], "\n"))
		content = strings.TrimSpace(strings.ReplaceAll(content, separator, ""))
		if content != "" {
			chunks = append(chunks, content)
		}
	}
	return chunks, nil
}

// ReadFile reads chunks from path. A missing file is an error; callers
// treat it as a terminal startup condition.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
