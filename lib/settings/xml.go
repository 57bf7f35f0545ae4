package settings

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// parseXML reads documents shaped like
//
//	<configuration>
//	  <packageSources>
//	    <clear />
//	    <add key="name" value="location" />
//	  </packageSources>
//	</configuration>
//
// Every child of the root element is a section. Inside a section, <add>
// sets an entry and <clear /> drops the entries read so far. Other elements
// are skipped.
func parseXML(data []byte) (*Memory, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.Entity = make(map[string]string)

	m := NewMemory()
	seenRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if seenRoot {
			return nil, fmt.Errorf("unexpected element <%s> after root element", start.Name.Local)
		}
		seenRoot = true
		if err := readXMLSections(dec, m); err != nil {
			return nil, err
		}
	}
	if !seenRoot {
		return nil, errors.New("missing root element")
	}
	return m, nil
}

func readXMLSections(dec *xml.Decoder, m *Memory) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := readXMLEntries(dec, m, t.Name.Local); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func readXMLEntries(dec *xml.Decoder, m *Memory, section string) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "add":
				key, ok := xmlAttr(t, "key")
				if !ok || key == "" {
					return fmt.Errorf("<add> in section %q is missing its key attribute", section)
				}
				value, _ := xmlAttr(t, "value")
				m.Add(section, key, value)
			case "clear":
				m.Clear(section)
			}
			if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func xmlAttr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
