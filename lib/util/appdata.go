package util

import (
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// fallbackProgramData is used on Windows when neither %ProgramData% nor
// %ALLUSERSPROFILE% is set.
const fallbackProgramData = `C:\ProgramData`

// CommonAppDataDir returns the machine-wide application data directory,
// the place administrators put configuration shared by every user:
//   - Windows: %ProgramData%
//   - macOS: /Library/Application Support
//   - other Unix systems: /usr/share
func CommonAppDataDir() string {
	return commonAppDataDir()
}

// programDataDir resolves the Windows common application data directory
// from the environment.
func programDataDir(getenv func(string) string) string {
	if dir := getenv("ProgramData"); dir != "" {
		return dir
	}
	if dir := getenv("ALLUSERSPROFILE"); dir != "" {
		log.WithFields(logger.Fields{
			"at":     "util.programDataDir",
			"reason": "programdata_unset",
			"dir":    dir,
		}).Warn("%ProgramData% not set, falling back to %ALLUSERSPROFILE%")
		return dir
	}
	log.WithFields(logger.Fields{
		"at":     "util.programDataDir",
		"reason": "environment_unset",
		"dir":    fallbackProgramData,
	}).Warn("%ProgramData% and %ALLUSERSPROFILE% not set, using built-in location")
	return fallbackProgramData
}
