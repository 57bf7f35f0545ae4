package config

import (
	"path/filepath"
	"sync"

	"github.com/go-i2p/go-pkgdefaults/lib/util"
)

const (
	// DefaultsDirName is the directory below the common application data
	// directory that holds the defaults file.
	DefaultsDirName = "NuGet"

	// DefaultsFileName is the name of the machine-wide defaults file.
	DefaultsFileName = "NuGetDefaults.config"
)

var shared struct {
	once     sync.Once
	defaults *Defaults
	err      error
}

// SharedDir returns the directory the shared Defaults are read from.
func SharedDir() string {
	return filepath.Join(util.CommonAppDataDir(), DefaultsDirName)
}

// SharedPath returns the full path of the machine-wide defaults file.
func SharedPath() string {
	return filepath.Join(SharedDir(), DefaultsFileName)
}

// Shared returns the process-wide Defaults read from SharedPath. The file is
// read on the first call only; later calls return the same Defaults, or the
// same error if the first read failed.
//
// Prefer building a Defaults once at startup and passing it to the code
// that needs it. Shared exists for hosts without such a wiring point.
func Shared() (*Defaults, error) {
	shared.once.Do(func() {
		shared.defaults, shared.err = New(SharedDir(), DefaultsFileName)
	})
	return shared.defaults, shared.err
}

// MustShared is like Shared but panics if the defaults file is broken.
func MustShared() *Defaults {
	d, err := Shared()
	if err != nil {
		panic(err)
	}
	return d
}
