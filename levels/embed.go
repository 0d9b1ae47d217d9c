// Package levels embeds the shipped level grids.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// Default is the level loaded when no -level flag is given.
const Default = "default"

// Load returns the raw grid text for the named level. The .txt extension is
// optional.
func Load(name string) (string, error) {
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return "", fmt.Errorf("read level: %w", err)
	}
	return string(data), nil
}

// Names lists the embedded level names without extension.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	return names
}
