// Package settings reads sectioned key/value configuration files.
//
// A file is made of named sections, each holding an ordered list of
// key/value entries. Lookups never fail: a missing section or key is
// reported as absent. Only opening and parsing a file can return an error.
package settings

import (
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// SettingValue is a single key/value entry of a section.
type SettingValue struct {
	Key   string
	Value string
}

// Settings is a read-only view over sectioned key/value configuration.
type Settings interface {
	// GetValue returns the value stored under key in section.
	// The boolean is false when either the section or the key is absent.
	GetValue(section, key string) (string, bool)

	// GetSettingValues returns the entries of section in file order.
	// A missing section yields an empty slice.
	GetSettingValues(section string) []SettingValue
}

// Null is a Settings with no content.
type Null struct{}

// GetValue implements Settings.
func (Null) GetValue(section, key string) (string, bool) {
	return "", false
}

// GetSettingValues implements Settings.
func (Null) GetSettingValues(section string) []SettingValue {
	return []SettingValue{}
}
