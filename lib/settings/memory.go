package settings

// Memory is an in-memory Settings that keeps sections and entries in
// insertion order. The file parsers build one of these; tests use it directly.
// A Memory must not be modified while it is being read concurrently.
type Memory struct {
	order    []string
	sections map[string][]SettingValue
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{sections: make(map[string][]SettingValue)}
}

// Add sets key to value in section. An existing key keeps its position and
// takes the new value; a new key is appended.
func (m *Memory) Add(section, key, value string) {
	entries, ok := m.sections[section]
	if !ok {
		m.order = append(m.order, section)
	}
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
			return
		}
	}
	m.sections[section] = append(entries, SettingValue{Key: key, Value: value})
}

// Clear drops every entry of section. The section itself stays known.
func (m *Memory) Clear(section string) {
	if _, ok := m.sections[section]; !ok {
		m.order = append(m.order, section)
	}
	m.sections[section] = nil
}

// Remove deletes key from section if present.
func (m *Memory) Remove(section, key string) {
	entries := m.sections[section]
	for i := range entries {
		if entries[i].Key == key {
			m.sections[section] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Sections returns the section names in the order they were first seen.
func (m *Memory) Sections() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// GetValue implements Settings.
func (m *Memory) GetValue(section, key string) (string, bool) {
	for _, e := range m.sections[section] {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// GetSettingValues implements Settings.
func (m *Memory) GetSettingValues(section string) []SettingValue {
	entries := m.sections[section]
	out := make([]SettingValue, len(entries))
	copy(out, entries)
	return out
}
