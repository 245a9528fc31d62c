// Package frontmatter performs the strict YAML-frontmatter parse used by
// the validate command. The index pipeline itself only line-scans for a
// name declaration and tolerates broken descriptors; this package is the
// opposite: a full parse that reports everything a descriptor is missing.
package frontmatter

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// Metadata is the YAML frontmatter every descriptor is expected to carry.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Parse extracts the frontmatter from a descriptor file. Missing
// frontmatter, an unparsable document, or a missing required field are
// all errors.
func Parse(path string) (*Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read descriptor")
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return nil, errors.New("name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("description is required in frontmatter")
	}

	return &Metadata{Name: name, Description: description}, nil
}
