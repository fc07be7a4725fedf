// Package config reads and writes the nyoom.toml document that tracks the
// selected Firefox profile and the known userchromes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ryanccn/nyoom/internal/fsutil"
)

// Pref is a single Firefox preference attached to a userchrome.
// Raw values are written verbatim, others are wrapped in double quotes.
type Pref struct {
	Key   string `toml:"key" json:"key" yaml:"key"`
	Value string `toml:"value" json:"value" yaml:"value"`
	Raw   bool   `toml:"raw" json:"raw" yaml:"raw"`
}

// Userchrome is a named theme entry
type Userchrome struct {
	Name   string `toml:"name" json:"name" yaml:"name"`
	Source string `toml:"source" json:"source" yaml:"source"`
	Prefs  []Pref `toml:"configs,omitempty" json:"configs,omitempty" yaml:"configs,omitempty"`
}

// Config represents the nyoom.toml configuration file
type Config struct {
	// Profile is the Firefox profile directory themes are installed into
	Profile string `toml:"profile,omitempty"`

	Userchromes []Userchrome `toml:"userchromes,omitempty"`
}

// Read loads the config at path. A missing file reads as an empty config.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Write saves the config to path, creating parent directories as needed
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0644)
}

// Find returns the userchrome with the given name, or nil
func (c *Config) Find(name string) *Userchrome {
	for i := range c.Userchromes {
		if c.Userchromes[i].Name == name {
			return &c.Userchromes[i]
		}
	}
	return nil
}

// Has reports whether a userchrome with the given name exists
func (c *Config) Has(name string) bool {
	return c.Find(name) != nil
}

// Add appends a userchrome. Callers check for name collisions first.
func (c *Config) Add(uc Userchrome) {
	c.Userchromes = append(c.Userchromes, uc)
}

// Remove deletes the named userchrome and returns it
func (c *Config) Remove(name string) (Userchrome, bool) {
	for i, uc := range c.Userchromes {
		if uc.Name == name {
			c.Userchromes = append(c.Userchromes[:i], c.Userchromes[i+1:]...)
			return uc, true
		}
	}
	return Userchrome{}, false
}

// SetPref updates the pref with the same key in place or appends a new one
func (u *Userchrome) SetPref(key, value string, raw bool) {
	for i := range u.Prefs {
		if u.Prefs[i].Key == key {
			u.Prefs[i].Value = value
			u.Prefs[i].Raw = raw
			return
		}
	}
	u.Prefs = append(u.Prefs, Pref{Key: key, Value: value, Raw: raw})
}

// UnsetPref drops every pref with the given key and reports whether any existed
func (u *Userchrome) UnsetPref(key string) bool {
	kept := u.Prefs[:0]
	for _, p := range u.Prefs {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(u.Prefs)
	u.Prefs = kept
	return removed
}
