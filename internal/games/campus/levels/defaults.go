package levels

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Defaults returns the embedded campaign levels, sorted by ID.
// Used when no levels directory is configured.
func Defaults() ([]Level, error) {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded levels: %w", err)
	}

	var out []Level
	for _, e := range entries {
		data, err := defaultsFS.ReadFile("defaults/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: reading embedded level %s: %w", e.Name(), err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("levels: embedded level %s: %w", e.Name(), err)
		}
		lvl.FilePath = "embedded:" + e.Name()
		out = append(out, lvl)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}
