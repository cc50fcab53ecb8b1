package fsutil

// FileStore provides an interface for the file system operations the
// ingest pipeline needs.
type FileStore interface {
	// ReadFile reads a file and returns its contents
	ReadFile(path string) ([]byte, error)

	// Exists reports whether a file or directory exists at path
	Exists(path string) bool

	// FindByExtensions recursively enumerates files under root whose
	// extension (case-insensitive, dot included) is in exts. Enumeration
	// order is filesystem-dependent.
	FindByExtensions(root string, exts []string) ([]string, error)
}
