//go:build !windows && !darwin
// +build !windows,!darwin

package util

func commonAppDataDir() string {
	return "/usr/share"
}
