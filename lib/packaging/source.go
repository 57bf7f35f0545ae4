// Package packaging holds the package-source model shared by the defaults
// provider and its consumers.
package packaging

import "fmt"

// PackageSource is a named location packages can be fetched from.
type PackageSource struct {
	// Name identifies the source in settings files and on the command line.
	Name string `yaml:"name"`
	// Source is the feed location, usually a URL or a directory path.
	Source string `yaml:"source"`
	// IsEnabled is false when the source has been disabled.
	IsEnabled bool `yaml:"enabled"`
	// IsOfficial marks sources that came from the machine-wide defaults
	// file rather than from a user.
	IsOfficial bool `yaml:"official"`
}

// NewPackageSource returns an enabled, non-official source.
func NewPackageSource(source, name string) PackageSource {
	return PackageSource{
		Name:      name,
		Source:    source,
		IsEnabled: true,
	}
}

// String renders the source as "name (location)".
func (p PackageSource) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Source)
}
