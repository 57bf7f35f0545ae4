package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullIsEmpty(t *testing.T) {
	var s Settings = Null{}

	v, ok := s.GetValue("config", "DefaultPushSource")
	assert.False(t, ok)
	assert.Empty(t, v)

	values := s.GetSettingValues("packageSources")
	assert.NotNil(t, values, "missing sections yield an empty slice, not nil")
	assert.Empty(t, values)
}

func TestMemoryKeepsInsertionOrder(t *testing.T) {
	m := NewMemory()
	m.Add("packageSources", "B", "http://b")
	m.Add("packageSources", "A", "http://a")
	m.Add("config", "DefaultPushSource", "http://push")

	assert.Equal(t, []SettingValue{
		{Key: "B", Value: "http://b"},
		{Key: "A", Value: "http://a"},
	}, m.GetSettingValues("packageSources"))
	assert.Equal(t, []string{"packageSources", "config"}, m.Sections())
}

func TestMemoryAddReplacesInPlace(t *testing.T) {
	m := NewMemory()
	m.Add("s", "a", "1")
	m.Add("s", "b", "2")
	m.Add("s", "a", "3")

	assert.Equal(t, []SettingValue{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, m.GetSettingValues("s"))
}

func TestMemoryClearAndRemove(t *testing.T) {
	m := NewMemory()
	m.Add("s", "a", "1")
	m.Add("s", "b", "2")
	m.Add("s", "c", "3")

	m.Remove("s", "b")
	assert.Equal(t, []SettingValue{{Key: "a", Value: "1"}, {Key: "c", Value: "3"}}, m.GetSettingValues("s"))

	m.Clear("s")
	assert.Empty(t, m.GetSettingValues("s"))
	_, ok := m.GetValue("s", "a")
	assert.False(t, ok)
}

func TestMemoryGetSettingValuesReturnsCopy(t *testing.T) {
	m := NewMemory()
	m.Add("s", "a", "1")

	values := m.GetSettingValues("s")
	values[0].Value = "changed"

	v, _ := m.GetValue("s", "a")
	assert.Equal(t, "1", v)
}

func TestMemoryLookupMisses(t *testing.T) {
	m := NewMemory()
	m.Add("s", "a", "1")

	_, ok := m.GetValue("s", "missing")
	assert.False(t, ok)
	_, ok = m.GetValue("missing", "a")
	assert.False(t, ok)
	assert.Empty(t, m.GetSettingValues("missing"))
}
