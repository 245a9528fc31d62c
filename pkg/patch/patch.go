// Package patch splices the rendered index into the README between two
// literal marker lines. Everything from the BEGIN marker through the END
// marker (inclusive) is replaced as a whole; every byte outside the
// marked region is preserved exactly. The write is all-or-nothing: the
// new document is fully assembled in memory and only then written, and
// any marker precondition failure leaves the file untouched.
package patch

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	// BeginMarker and EndMarker delimit the replaceable README region.
	// Each must appear exactly once, BEGIN before END.
	BeginMarker = "<!-- BEGIN SKILLS INDEX -->"
	EndMarker   = "<!-- END SKILLS INDEX -->"
)

// Splice returns the document with the marked region replaced by the
// given index block wrapped in a fenced code block. The input document is
// not modified. Marker preconditions are checked before any assembly.
func Splice(doc, block string) (string, error) {
	if err := checkMarker(doc, BeginMarker); err != nil {
		return "", err
	}
	if err := checkMarker(doc, EndMarker); err != nil {
		return "", err
	}

	begin := strings.Index(doc, BeginMarker)
	end := strings.Index(doc, EndMarker)
	if end < begin {
		return "", errors.Errorf("marker %q appears before %q", EndMarker, BeginMarker)
	}

	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}

	var b strings.Builder
	b.WriteString(doc[:begin])
	b.WriteString(BeginMarker)
	b.WriteString("\n```text\n")
	b.WriteString(block)
	b.WriteString("```\n")
	b.WriteString(EndMarker)
	b.WriteString(doc[end+len(EndMarker):])
	return b.String(), nil
}

// Apply reads the document at path, splices the block into its marked
// region and writes the result back, preserving the file's mode. Nothing
// is written when the splice fails.
func Apply(path, block string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to stat target document %s", path)
	}

	doc, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read target document %s", path)
	}

	patched, err := Splice(string(doc), block)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode()); err != nil {
		return errors.Wrapf(err, "failed to write target document %s", path)
	}
	return nil
}

// checkMarker enforces the exactly-once precondition, naming the marker
// and the observed count so the operator can fix the document.
func checkMarker(doc, marker string) error {
	switch n := strings.Count(doc, marker); n {
	case 1:
		return nil
	case 0:
		return errors.Errorf("marker %q not found in target document", marker)
	default:
		return errors.Errorf("marker %q appears %d times in target document, expected exactly once", marker, n)
	}
}
