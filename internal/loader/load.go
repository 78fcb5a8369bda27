package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/relcheck/internal/ir"
)

// Load reads the source at path and parses it.
// ".cue" and ".json" sources are evaluated with CUE; everything else is
// parsed as the two-line text format.
func Load(path string) (ir.Relation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Relation{}, NewSourceNotFoundError(path, err)
	}

	var rel ir.Relation
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue", ".json":
		rel, err = ParseCUE(data, path)
	default:
		rel, err = Parse(bytes.NewReader(data))
	}
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && le.Source == "" {
			le.Source = path
		}
		return ir.Relation{}, err
	}
	return rel, nil
}
