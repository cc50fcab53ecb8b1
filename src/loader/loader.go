package loader

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"docgpt/src/fsutil"
	"docgpt/src/log"
)

// Extensions lists the file types the loader recognizes.
var Extensions = []string{".txt", ".md", ".pdf"}

// Document is an opaque text blob tagged with its source path. It is
// produced once by the loader and never mutated afterwards.
type Document struct {
	Source string
	Text   string
}

// Failure records a single file that could not be loaded.
type Failure struct {
	Path string
	Err  error
}

// Report aggregates the outcome of a load run: the documents that were
// extracted and the files that were skipped, one entry per failure.
type Report struct {
	Documents []Document
	Failures  []Failure
}

// Loader extracts document text from files in a FileStore. A failure on
// one file never aborts the run; it is recorded in the report instead.
type Loader struct {
	store fsutil.FileStore

	// OnFileDone, if set, is called after each file is processed,
	// whether it loaded or failed.
	OnFileDone func(path string)
}

func New(store fsutil.FileStore) *Loader {
	return &Loader{store: store}
}

// Discover enumerates the recognized files under root. A missing root is
// an error; a root with no matching files yields an empty slice.
func (l *Loader) Discover(root string) ([]string, error) {
	return l.store.FindByExtensions(root, Extensions)
}

// Load processes the given files and aggregates the outcome. Per-file
// failures are logged and collected, never returned as an error.
func (l *Loader) Load(paths []string) Report {
	var report Report
	for _, path := range paths {
		doc, err := l.LoadFile(path)
		if err != nil {
			log.Error(err, "failed to load file", "path", path)
			report.Failures = append(report.Failures, Failure{Path: path, Err: err})
		} else {
			report.Documents = append(report.Documents, doc)
		}
		if l.OnFileDone != nil {
			l.OnFileDone(path)
		}
	}
	return report
}

// LoadFile extracts the text of a single file. The document text is the
// source label "File: <path>" followed by a blank line and the content.
func (l *Loader) LoadFile(path string) (Document, error) {
	var content string
	var err error

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		content, err = l.extractPDF(path)
	} else {
		content, err = l.readText(path)
	}
	if err != nil {
		return Document{}, err
	}

	return Document{
		Source: path,
		Text:   fmt.Sprintf("File: %s\n\n%s", path, content),
	}, nil
}

// readText reads a file as UTF-8 text. Invalid byte sequences are
// dropped rather than treated as an error.
func (l *Loader) readText(path string) (string, error) {
	data, err := l.store.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// extractPDF concatenates the plain text of every page in document order.
func (l *Loader) extractPDF(path string) (string, error) {
	data, err := l.store.ReadFile(path)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		text.WriteString(pageText)
	}
	return text.String(), nil
}
