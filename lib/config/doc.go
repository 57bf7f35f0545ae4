// Package config provides the machine-wide defaults of the package client.
//
// # Defaults File
//
// Administrators can seed every user's settings from a single file,
// NuGetDefaults.config, stored in a NuGet directory below the common
// application data directory:
//   - Windows: %ProgramData%\NuGet\NuGetDefaults.config
//   - macOS: /Library/Application Support/NuGet/NuGetDefaults.config
//   - other Unix systems: /usr/share/NuGet/NuGetDefaults.config
//
// The file is optional. When it is absent, Defaults reports no package
// sources, no push source and no restore consent. When it is present but
// unreadable or malformed, construction fails and the error names the file.
//
// # Caching
//
// DefaultPackageSources and DefaultPushSource are resolved on first use and
// never re-read. DefaultPackageRestoreConsent is read on every call.
//
// # Name Matching
//
// Entries of the disabledPackageSources section disable package sources
// whose names match case-insensitively. By default the comparison follows
// the casing rules of the host locale (see HostLanguage), which can give
// different results for non-ASCII names on machines with different locales.
// Use WithComparer(OrdinalIgnoreCase) for locale-independent matching.
package config
