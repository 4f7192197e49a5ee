package driven

import "context"

// FileListWriter persists one sample's access URLs.
type FileListWriter interface {
	// WriteList creates or truncates the list file for shortName and
	// writes one line per entry, in order. The file is closed before
	// returning on every path. Returns the path written.
	WriteList(ctx context.Context, shortName string, lines []string) (string, error)

	// Dir returns the output directory.
	Dir() string
}
