package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docgpt/src/fsutil"
	"docgpt/src/loader"
)

// failingStore wraps a FileStore and fails reads for chosen paths.
type failingStore struct {
	fsutil.FileStore
	failOn map[string]bool
}

func (s *failingStore) ReadFile(path string) ([]byte, error) {
	if s.failOn[path] {
		return nil, errors.New("simulated read failure")
	}
	return s.FileStore.ReadFile(path)
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFileLabelsDocument(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "notes.md")
	writeFile(t, path, []byte("# heading\n\nsome markdown"))

	ld := loader.New(fsutil.NewLocalFileStore())
	doc, err := ld.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Source != path {
		t.Errorf("Source = %q, want %q", doc.Source, path)
	}
	want := "File: " + path + "\n\n# heading\n\nsome markdown"
	if doc.Text != want {
		t.Errorf("Text = %q, want %q", doc.Text, want)
	}
}

func TestLoadFileDropsInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "broken.txt")
	writeFile(t, path, []byte("good\xff\xfebytes"))

	ld := loader.New(fsutil.NewLocalFileStore())
	doc, err := ld.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(doc.Text, "goodbytes") {
		t.Errorf("invalid bytes were not dropped: %q", doc.Text)
	}
}

func TestLoadFileCorruptPDF(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bad.pdf")
	writeFile(t, path, []byte("this is not a pdf"))

	ld := loader.New(fsutil.NewLocalFileStore())
	if _, err := ld.LoadFile(path); err == nil {
		t.Fatal("expected an error for a corrupt pdf")
	}
}

func TestDiscoverRecognizedExtensionsOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), []byte("a"))
	writeFile(t, filepath.Join(root, "sub", "b.md"), []byte("b"))
	writeFile(t, filepath.Join(root, "c.docx"), []byte("c"))

	ld := loader.New(fsutil.NewLocalFileStore())
	files, err := ld.Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("discovered %d files, want 2: %v", len(files), files)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	ld := loader.New(fsutil.NewLocalFileStore())
	if _, err := ld.Discover(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for a missing source directory")
	}
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	ld := loader.New(fsutil.NewLocalFileStore())
	files, err := ld.Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestLoadCollectsFailuresAndContinues(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.txt")
	bad := filepath.Join(root, "bad.txt")
	writeFile(t, good, []byte(strings.Repeat("ok ", 30)))
	writeFile(t, bad, []byte("doomed"))

	store := &failingStore{
		FileStore: fsutil.NewLocalFileStore(),
		failOn:    map[string]bool{bad: true},
	}
	ld := loader.New(store)

	var seen []string
	ld.OnFileDone = func(path string) { seen = append(seen, path) }

	report := ld.Load([]string{good, bad})
	if len(report.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(report.Documents))
	}
	if report.Documents[0].Source != good {
		t.Errorf("loaded document = %q, want %q", report.Documents[0].Source, good)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(report.Failures))
	}
	if report.Failures[0].Path != bad {
		t.Errorf("failure path = %q, want %q", report.Failures[0].Path, bad)
	}
	if len(seen) != 2 {
		t.Errorf("OnFileDone called %d times, want 2", len(seen))
	}
}
