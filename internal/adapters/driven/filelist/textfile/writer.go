package textfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.FileListWriter = (*Writer)(nil)

const (
	fileMode = 0644
	dirMode  = 0755
)

// Writer writes list files into one directory.
type Writer struct {
	dir       string
	createDir bool
}

// NewWriter creates a writer for dir.
func NewWriter(dir string, createDir bool) *Writer {
	return &Writer{dir: dir, createDir: createDir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the list file path for a sample short name.
func (w *Writer) Path(shortName string) string {
	return filepath.Join(w.dir, domain.ListFileName(shortName))
}

// WriteList creates or truncates the list file and writes each line
// followed by a newline. The file is closed on every return path and a
// close failure is reported.
func (w *Writer) WriteList(ctx context.Context, shortName string, lines []string) (path string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if w.createDir {
		if err := os.MkdirAll(w.dir, dirMode); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	path = w.Path(shortName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			path, err = "", fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}

	return path, nil
}
