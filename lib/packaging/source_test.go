package packaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPackageSource(t *testing.T) {
	src := NewPackageSource("https://feed.example/v3/index.json", "feed")

	assert.Equal(t, "feed", src.Name)
	assert.Equal(t, "https://feed.example/v3/index.json", src.Source)
	assert.True(t, src.IsEnabled)
	assert.False(t, src.IsOfficial)
}

func TestPackageSourceString(t *testing.T) {
	src := PackageSource{Name: "local", Source: "/srv/packages"}
	assert.Equal(t, "local (/srv/packages)", src.String())
}
