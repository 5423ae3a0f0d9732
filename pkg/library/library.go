// Package library stores generated footprints in a KiCad footprint
// library directory (*.pretty).
package library

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
)

// DefaultDir is the library used when no output directory is given
const DefaultDir = "./nfc_ant.pretty"

// Extension of a footprint file
const Extension = ".kicad_mod"

// Library is a footprint library directory
type Library struct {
	Dir string
}

// New returns the library at dir, or DefaultDir when dir is empty
func New(dir string) *Library {
	if dir == "" {
		dir = DefaultDir
	}
	return &Library{Dir: dir}
}

// Path returns the file name of footprint name in the library
func (l *Library) Path(name string) string {
	return filepath.Join(l.Dir, name+Extension)
}

// Save writes header followed by fp to <Dir>/<name>.kicad_mod, creating
// the directory when needed. An existing file is replaced.
func (l *Library) Save(name, header string, fp *footprint.Footprint, dialect footprint.Dialect) (string, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create library: %w", err)
	}

	path := l.Path(name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	if err := footprint.NewWriter(dialect).Write(w, fp); err != nil {
		return "", fmt.Errorf("failed to write footprint: %w", err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}

// Footprints returns the names of the footprints in the library
func (l *Library) Footprints() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(l.Dir, "*"+Extension))
	if err != nil {
		return nil, fmt.Errorf("failed to list library: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		names = append(names, base[:len(base)-len(Extension)])
	}
	return names, nil
}
