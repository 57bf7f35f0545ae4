package settings

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML reads a top-level mapping of sections, each a mapping of
// key to scalar value. Entry order follows the document.
func parseYAML(data []byte) (*Memory, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	m := NewMemory()
	if len(doc.Content) == 0 {
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("top level must be a mapping of sections")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		section, body := root.Content[i].Value, root.Content[i+1]
		switch body.Kind {
		case yaml.MappingNode:
		case yaml.ScalarNode:
			if body.Tag == "!!null" {
				m.Clear(section)
				continue
			}
			return nil, fmt.Errorf("line %d: section %q must be a mapping", body.Line, section)
		default:
			return nil, fmt.Errorf("line %d: section %q must be a mapping", body.Line, section)
		}

		m.Clear(section)
		for j := 0; j+1 < len(body.Content); j += 2 {
			k, v := body.Content[j], body.Content[j+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: value of %s.%s must be a scalar", v.Line, section, k.Value)
			}
			value := v.Value
			if v.Tag == "!!null" {
				value = ""
			}
			m.Add(section, k.Value, value)
		}
	}
	return m, nil
}
