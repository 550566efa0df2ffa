// Package gridfile reads grids and query streams from plain text files.
package gridfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileKind tells what a text file holds
type FileKind int

const (
	KindGrid    FileKind = iota // one grid row per line
	KindQueries                 // whitespace separated query words
)

// KindInfo contains what a file of a given kind must look like
type KindInfo struct {
	Kind        FileKind
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedKinds = map[FileKind]KindInfo{
	KindGrid: {
		Kind:        KindGrid,
		Description: "Grid",
		Extensions:  []string{".txt", ".grid"},
		MinSize:     1,
	},
	KindQueries: {
		Kind:        KindQueries,
		Description: "Query stream",
		Extensions:  []string{".txt", ".lst", ".words"},
		MinSize:     0,
	},
}

// ValidateFile checks that filename exists, is big enough and has an extension
// accepted for kind.
func ValidateFile(filename string, kind FileKind) error {
	info, exists := supportedKinds[kind]
	if !exists {
		return fmt.Errorf("unknown file kind: %v", kind)
	}

	stat, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if stat.IsDir() {
		return fmt.Errorf("%s is a directory, expected a %s file", filename, strings.ToLower(info.Description))
	}
	if stat.Size() < info.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for a %s file (minimum: %d bytes)",
			filename, stat.Size(), strings.ToLower(info.Description), info.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(info.Extensions, ext) {
		return fmt.Errorf("file %s has invalid extension %q for a %s file (expected: %v)",
			filename, ext, strings.ToLower(info.Description), info.Extensions)
	}
	return nil
}
