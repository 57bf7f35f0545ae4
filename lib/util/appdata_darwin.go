//go:build darwin
// +build darwin

package util

func commonAppDataDir() string {
	return "/Library/Application Support"
}
