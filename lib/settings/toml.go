package settings

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// parseTOML reads top-level tables as sections. Entries keep document
// order; string, boolean and numeric values are accepted and stored in their
// textual form.
func parseTOML(data []byte) (*Memory, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	m := NewMemory()
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			if md.Type(key...) != "Hash" {
				return nil, fmt.Errorf("top-level key %q must be a table", key[0])
			}
			m.Clear(key[0])
		case 2:
			section, name := key[0], key[1]
			table, _ := raw[section].(map[string]any)
			value, err := tomlScalar(table[name])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m.Add(section, name, value)
		default:
			return nil, fmt.Errorf("%s: tables nested below a section are not supported", key)
		}
	}
	return m, nil
}

func tomlScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool, int64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
