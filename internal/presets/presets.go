// Package presets bundles ready-made userchrome entries for popular themes.
package presets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ryanccn/nyoom/internal/config"
	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
)

//go:embed *.toml
var files embed.FS

// All returns every bundled preset sorted by name
func All() ([]config.Userchrome, error) {
	return load(files)
}

// Get returns the preset with the given name
func Get(name string) (config.Userchrome, error) {
	all, err := All()
	if err != nil {
		return config.Userchrome{}, err
	}
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return config.Userchrome{}, fmt.Errorf("%w: %q", nyoomerrors.ErrPresetNotFound, name)
}

// Names returns the names of all bundled presets
func Names() []string {
	all, err := All()
	if err != nil {
		return nil
	}
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

func load(fsys fs.FS) ([]config.Userchrome, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var out []config.Userchrome
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}

		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}

		var uc config.Userchrome
		if err := toml.Unmarshal(data, &uc); err != nil {
			return nil, fmt.Errorf("preset %s: %w", e.Name(), err)
		}
		out = append(out, uc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
