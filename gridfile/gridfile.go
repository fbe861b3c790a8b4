// Package gridfile loads named integer grids from YAML or JSON documents.
//
// Document shape:
//
//	grids:
//	  - name: square
//	    cells:
//	      - [0, 1]
//	      - [2, 3]
//
// JSON is accepted as well, since it is a subset of YAML.
package gridfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spiral/grid"
)

// ErrNoGrids indicates a document that declares no grids.
var ErrNoGrids = errors.New("gridfile: document contains no grids")

// Entry is one named grid of a document.
type Entry struct {
	Name  string  `yaml:"name"`
	Cells [][]int `yaml:"cells"`
}

// Document is the decoded file.
type Document struct {
	Grids []Entry `yaml:"grids"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads a document from r. Every grid must be non-empty and
// rectangular; unnamed grids are called "grid-<n>" (1-based).
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoGrids
		}
		return nil, fmt.Errorf("gridfile: decode: %w", err)
	}
	if len(doc.Grids) == 0 {
		return nil, ErrNoGrids
	}

	for i := range doc.Grids {
		e := &doc.Grids[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("grid-%d", i+1)
		}
		if err := grid.Validate(e.Cells); err != nil {
			return nil, fmt.Errorf("gridfile: grid %q: %w", e.Name, err)
		}
	}

	return &doc, nil
}
