//go:build windows
// +build windows

package util

import "os"

func commonAppDataDir() string {
	return programDataDir(os.Getenv)
}
