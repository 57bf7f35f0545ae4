package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/go-i2p/go-pkgdefaults/lib/packaging"
	"github.com/go-i2p/go-pkgdefaults/lib/settings"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Section and key names read from the defaults file.
const (
	SectionPackageSources         = "packageSources"
	SectionDisabledPackageSources = "disabledPackageSources"
	SectionConfig                 = "config"
	SectionPackageRestore         = "packageRestore"

	KeyDefaultPushSource = "DefaultPushSource"
	KeyRestoreEnabled    = "enabled"
)

// Loader opens the settings file at path. An error matching fs.ErrNotExist
// means the file is absent; any other error is a broken file.
type Loader func(path string) (settings.Settings, error)

// Option configures a Defaults at construction.
type Option func(*options)

type options struct {
	loader   Loader
	comparer NameComparer
}

// WithLoader replaces settings.Open as the way the defaults file is read.
func WithLoader(loader Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithComparer sets how disabled-source names are matched against package
// source names. The default is CurrentCultureIgnoreCase.
func WithComparer(comparer NameComparer) Option {
	return func(o *options) {
		o.comparer = comparer
	}
}

// Defaults exposes the machine-wide default settings of the package client.
//
// Package sources and the push source are read from the store once and then
// served from memory for the lifetime of the Defaults. Restore consent is
// read from the store on every call. A Defaults is safe for concurrent use
// provided its store is.
type Defaults struct {
	store   settings.Settings
	matches NameComparer

	sources    lazy[[]packaging.PackageSource]
	pushSource lazy[optional]
}

// New reads the defaults file fileName in directory.
//
// A missing file is not an error: the result then reports no package
// sources, no push source and no restore consent. Any other failure to read
// or parse the file is returned, so that a broken machine-wide file is
// noticed instead of silently ignored.
func New(directory, fileName string, opts ...Option) (*Defaults, error) {
	o := options{
		loader:   settings.Open,
		comparer: CurrentCultureIgnoreCase(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	path := filepath.Join(directory, fileName)
	store, err := loadStore(o.loader, path)
	if err != nil {
		return nil, err
	}
	return &Defaults{store: store, matches: o.comparer}, nil
}

// NewFromSettings wraps an already opened store. A nil store behaves like
// an absent defaults file.
func NewFromSettings(store settings.Settings, opts ...Option) *Defaults {
	o := options{comparer: CurrentCultureIgnoreCase()}
	for _, opt := range opts {
		opt(&o)
	}
	if store == nil {
		store = settings.Null{}
	}
	return &Defaults{store: store, matches: o.comparer}
}

func loadStore(load Loader, path string) (settings.Settings, error) {
	store, err := load(path)
	switch {
	case err == nil && store != nil:
		log.WithFields(logger.Fields{
			"at":     "config.loadStore",
			"reason": "defaults_file_loaded",
			"path":   path,
		}).Debug("using machine-wide defaults file")
		return store, nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		log.WithFields(logger.Fields{
			"at":     "config.loadStore",
			"reason": "defaults_file_absent",
			"path":   path,
		}).Debug("no machine-wide defaults file, using empty defaults")
		return settings.Null{}, nil
	default:
		log.WithError(err).WithFields(logger.Fields{
			"at":     "config.loadStore",
			"reason": "defaults_file_broken",
			"path":   path,
		}).Error("cannot load machine-wide defaults file")
		return nil, oops.
			In("config").
			With("path", path).
			Wrapf(err, "loading defaults file %s", path)
	}
}

// DefaultPackageSources returns the package sources listed in the defaults
// file, in file order. All of them are official; a source is disabled when
// its name matches an entry of the disabled sources section.
//
// The sources are resolved on the first call. Each call returns a fresh
// copy of that result.
func (d *Defaults) DefaultPackageSources() []packaging.PackageSource {
	return slices.Clone(d.sources.get(d.resolvePackageSources))
}

func (d *Defaults) resolvePackageSources() []packaging.PackageSource {
	disabled := d.store.GetSettingValues(SectionDisabledPackageSources)
	entries := d.store.GetSettingValues(SectionPackageSources)

	sources := make([]packaging.PackageSource, 0, len(entries))
	for _, entry := range entries {
		sources = append(sources, packaging.PackageSource{
			Name:       entry.Key,
			Source:     entry.Value,
			IsEnabled:  !d.isDisabled(entry.Key, disabled),
			IsOfficial: true,
		})
	}

	log.WithFields(logger.Fields{
		"at":       "config.resolvePackageSources",
		"reason":   "sources_resolved",
		"sources":  len(sources),
		"disabled": len(disabled),
	}).Debug("resolved default package sources")
	return sources
}

func (d *Defaults) isDisabled(name string, disabled []settings.SettingValue) bool {
	return slices.ContainsFunc(disabled, func(v settings.SettingValue) bool {
		return d.matches(v.Key, name)
	})
}

// DefaultPushSource returns the default push destination. It is read once;
// if the defaults file has none, every call reports it absent.
func (d *Defaults) DefaultPushSource() (string, bool) {
	v := d.pushSource.get(func() optional {
		return optionalOf(d.store.GetValue(SectionConfig, KeyDefaultPushSource))
	})
	return v.value, v.ok
}

// DefaultPackageRestoreConsent returns the raw package restore consent
// value. Unlike the other defaults it is not cached.
func (d *Defaults) DefaultPackageRestoreConsent() (string, bool) {
	return d.store.GetValue(SectionPackageRestore, KeyRestoreEnabled)
}

// Snapshot is a point-in-time copy of all defaults.
type Snapshot struct {
	PackageSources        []packaging.PackageSource `yaml:"packageSources"`
	DefaultPushSource     *string                   `yaml:"defaultPushSource,omitempty"`
	PackageRestoreConsent *string                   `yaml:"packageRestoreConsent,omitempty"`
}

// Snapshot collects the current defaults through the regular accessors.
func (d *Defaults) Snapshot() Snapshot {
	s := Snapshot{PackageSources: d.DefaultPackageSources()}
	if v, ok := d.DefaultPushSource(); ok {
		s.DefaultPushSource = &v
	}
	if v, ok := d.DefaultPackageRestoreConsent(); ok {
		s.PackageRestoreConsent = &v
	}
	return s
}
