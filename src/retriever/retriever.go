package retriever

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultMaxResults bounds how many scored chunks a search returns.
	DefaultMaxResults = 4

	// contextChunkLimit is the display length a chunk is cut to when
	// formatted into prompt context.
	contextChunkLimit = 500

	// NoContextSentinel is returned by FormatContext when no chunk
	// matched the query.
	NoContextSentinel = "No relevant information found in the documents."
)

// Result pairs a chunk with its relevance to a query. Score is the
// fraction of unique query words present in the chunk, always in (0, 1].
type Result struct {
	Chunk string
	Score float64
}

// Search scores every chunk by word overlap with the query and returns at
// most maxResults results in descending score order. Chunks sharing no
// word with the query are excluded entirely. Equal scores keep the
// incoming chunk order.
//
// An empty query matches nothing and returns no results.
func Search(query string, chunks []string, maxResults int) []Result {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return nil
	}

	var results []Result
	for _, chunk := range chunks {
		overlap := 0
		for word := range tokenize(chunk) {
			if queryWords[word] {
				overlap++
			}
		}
		if overlap > 0 {
			results = append(results, Result{
				Chunk: chunk,
				Score: float64(overlap) / float64(len(queryWords)),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// FormatContext renders search results as the context block of the model
// prompt: a rank and two-decimal relevance header per result, followed by
// the chunk text cut to 500 characters.
func FormatContext(results []Result) string {
	if len(results) == 0 {
		return NoContextSentinel
	}

	var b strings.Builder
	b.WriteString("Based on the following information from your documents:\n\n")
	for i, r := range results {
		display := r.Chunk
		if runes := []rune(display); len(runes) > contextChunkLimit {
			display = string(runes[:contextChunkLimit]) + "..."
		}
		fmt.Fprintf(&b, "Document %d (relevance: %.2f):\n%s\n\n", i+1, r.Score, display)
	}
	return b.String()
}

// tokenize lowercases s and splits it on whitespace into a set of unique
// words. No stemming and no punctuation handling; matching is exact.
func tokenize(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = true
	}
	return words
}
