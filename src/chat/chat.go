// Package chat implements the interactive question loop: it reads a
// query, retrieves matching chunks, composes a prompt and forwards it to
// the model. The loop never dies on a bad query; only running out of
// input, an explicit exit or an interrupt ends the session.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"docgpt/src/log"
	"docgpt/src/retriever"
)

const systemPrompt = "You are a helpful assistant that answers questions based on provided documents."

// Generator produces a model answer for a composed prompt. Satisfied by
// *ollama.Provider.
type Generator interface {
	Reasoning(ctx context.Context, system string, prompt string) (string, error)
}

// Capability records the result of the startup model probe. It is built
// once by the caller; every generation the driver performs is gated on
// Available.
type Capability struct {
	Model     string
	Available bool
}

// Driver runs the interactive loop over an in-memory chunk set.
type Driver struct {
	chunks     []string
	gen        Generator
	capability Capability
	maxResults int
	session    string
}

type Option func(*Driver)

// WithMaxResults overrides how many chunks a query retrieves.
func WithMaxResults(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.maxResults = n
		}
	}
}

func New(chunks []string, gen Generator, capability Capability, opts ...Option) *Driver {
	d := &Driver{
		chunks:     chunks,
		gen:        gen,
		capability: capability,
		maxResults: retriever.DefaultMaxResults,
		session:    uuid.New().String(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run reads queries from in until the input ends, the user types "exit"
// or ctx is cancelled (interrupt). Each iteration is independent; a
// failed query prints its error and the loop continues.
func (d *Driver) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log.Info("chat session started",
		"session", d.session,
		"model", d.capability.Model,
		"chunks", len(d.chunks))

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Ready! Ask questions about your documents.")
	fmt.Fprintln(out, "Type 'exit' to quit")
	fmt.Fprintln(out, rule)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "\nEnter your question: ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\nGoodbye!")
				return nil
			}
			query := strings.TrimSpace(line)
			if query == "" {
				continue
			}
			if strings.EqualFold(query, "exit") {
				fmt.Fprintln(out, "Goodbye!")
				return nil
			}
			d.answer(ctx, query, out)
		}
	}
}

func (d *Driver) answer(ctx context.Context, query string, out io.Writer) {
	start := time.Now()

	fmt.Fprintln(out, "Searching documents...")
	results := retriever.Search(query, d.chunks, d.maxResults)
	if len(results) == 0 {
		fmt.Fprintln(out, "No relevant information found in your documents.")
		return
	}

	prompt := buildPrompt(query, retriever.FormatContext(results))

	fmt.Fprintln(out, "Generating response...")
	response := d.generate(ctx, prompt)
	elapsed := time.Since(start)

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintf(out, "Question: %s\n", query)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Answer:\n%s\n", response)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Response time: %.2f seconds\n", elapsed.Seconds())
	fmt.Fprintf(out, "Found %d relevant document sections\n", len(results))

	log.Debug("query answered",
		"session", d.session,
		"results", len(results),
		"elapsed", elapsed.String())
}

// generate returns the model answer, or an error-describing string so the
// loop can keep going after a failed invocation.
func (d *Driver) generate(ctx context.Context, prompt string) string {
	if !d.capability.Available {
		return "Ollama integration is not available."
	}
	response, err := d.gen.Reasoning(ctx, systemPrompt, prompt)
	if err != nil {
		log.Error(err, "model invocation failed", "session", d.session)
		return fmt.Sprintf("Error querying Ollama: %v", err)
	}
	return response
}

func buildPrompt(query, context string) string {
	return fmt.Sprintf(`Context from documents:
%s

Question: %s

Please provide a helpful answer based on the information in the documents. If the documents don't contain relevant information, please say so clearly.

Answer:`, context, query)
}
