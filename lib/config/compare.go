package config

import (
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NameComparer reports whether two package source names refer to the same source.
type NameComparer func(a, b string) bool

// OrdinalIgnoreCase compares names with simple Unicode case folding,
// independent of the host locale.
func OrdinalIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// CultureIgnoreCase compares names case-insensitively using the casing
// rules of tag. In Turkish, for example, "I" and "i" are different letters.
func CultureIgnoreCase(tag language.Tag) NameComparer {
	return func(a, b string) bool {
		// A cases.Caser is stateful, so each comparison gets its own.
		lower := cases.Lower(tag)
		return lower.String(norm.NFC.String(a)) == lower.String(norm.NFC.String(b))
	}
}

// CurrentCultureIgnoreCase compares names using the casing rules of the
// host locale, as reported by HostLanguage.
func CurrentCultureIgnoreCase() NameComparer {
	return CultureIgnoreCase(HostLanguage())
}

// HostLanguage returns the language of the process locale, taken from the
// first non-empty of LC_ALL, LC_MESSAGES and LANG. The C and POSIX locales,
// an unset locale and unparsable values all map to language.Und.
func HostLanguage() language.Tag {
	return languageFromEnv(os.Getenv)
}

func languageFromEnv(getenv func(string) string) language.Tag {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(name); v != "" {
			return parseLocale(v)
		}
	}
	return language.Und
}

// parseLocale turns a POSIX locale such as "tr_TR.UTF-8@euro" into a
// language tag.
func parseLocale(locale string) language.Tag {
	locale, _, _ = strings.Cut(locale, "@")
	locale, _, _ = strings.Cut(locale, ".")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
