// Package manifest loads the marketplace catalog that lists every skill
// and agent shipped by this repository. The catalog is the single source
// of truth for ordering: downstream stages never re-sort references.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Manifest holds the two ordered reference lists from the catalog file.
// Other catalog keys (owner, metadata, plugin descriptors) belong to the
// marketplace tooling and are deliberately ignored here.
type Manifest struct {
	Skills []string `json:"skills"`
	Agents []string `json:"agents"`
}

// Load reads and decodes the catalog file. A manifest that cannot be read
// or parsed is fatal to the whole run; references that later fail to
// resolve are not this package's concern.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest %s", path)
	}

	return &m, nil
}
