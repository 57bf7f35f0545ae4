package settings

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// maxFileSize bounds how much of a settings file is read.
const maxFileSize = 4 * 1024 * 1024

var (
	// ErrUnreadable is reported when a settings file exists but cannot be read.
	ErrUnreadable = errors.New("settings file unreadable")

	// ErrMalformed is reported when a settings file cannot be parsed.
	ErrMalformed = errors.New("settings file malformed")
)

// Format identifies the syntax of a settings file.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the file format from the extension of path.
// Unknown extensions, including ".config", are treated as XML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatXML
	}
}

// Parse decodes data in the given format.
func Parse(format Format, data []byte) (*Memory, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatTOML:
		return parseTOML(data)
	case FormatXML:
		return parseXML(data)
	default:
		return nil, fmt.Errorf("unknown settings format %q", format)
	}
}

// Open reads and parses the settings file at path.
//
// A missing file yields an error matching fs.ErrNotExist. Other I/O
// failures match ErrUnreadable and parse failures match ErrMalformed.
// Every returned error carries the path.
func Open(path string) (Settings, error) {
	errs := oops.In("settings").With("path", path)

	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrapf(err, "settings file %s not found", path)
		}
		log.WithError(err).WithFields(logger.Fields{
			"at":     "settings.Open",
			"reason": "read_failed",
			"path":   path,
		}).Debug("cannot read settings file")
		return nil, errs.Wrapf(fmt.Errorf("%w: %w", ErrUnreadable, err), "reading %s", path)
	}

	m, err := Parse(FormatOf(path), data)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":     "settings.Open",
			"reason": "parse_failed",
			"path":   path,
		}).Debug("cannot parse settings file")
		return nil, errs.Wrapf(fmt.Errorf("%w: %w", ErrMalformed, err), "parsing %s", path)
	}

	log.WithFields(logger.Fields{
		"at":       "settings.Open",
		"reason":   "loaded",
		"path":     path,
		"sections": len(m.Sections()),
	}).Debug("loaded settings file")
	return m, nil
}

func readFile(path string) (data []byte, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err = io.ReadAll(io.LimitReader(f, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("file exceeds %d bytes", maxFileSize)
	}
	return data, nil
}
