package util

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestProgramDataDir(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "ProgramData set",
			env:  map[string]string{"ProgramData": `D:\Data`, "ALLUSERSPROFILE": `E:\Users`},
			want: `D:\Data`,
		},
		{
			name: "falls back to ALLUSERSPROFILE",
			env:  map[string]string{"ALLUSERSPROFILE": `E:\Users`},
			want: `E:\Users`,
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			want: fallbackProgramData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, programDataDir(envOf(tt.env)))
		})
	}
}

func TestCommonAppDataDir(t *testing.T) {
	dir := CommonAppDataDir()
	assert.NotEmpty(t, dir)

	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, "/Library/Application Support", dir)
	case "windows":
	default:
		assert.Equal(t, "/usr/share", dir)
	}
}
