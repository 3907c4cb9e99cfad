package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two display languages the upstream API is queried in.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
)

// Parse maps a POSIX locale ("en_US.UTF-8") or BCP 47 tag ("en-GB") to a
// supported Language. Anything that is neither English nor Indonesian is
// Indonesian.
func Parse(value string) Language {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" {
		return Indonesian
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return Indonesian
	}

	base, _ := tag.Base()
	if base.String() == "en" {
		return English
	}
	return Indonesian
}

// Detect reads the active system language from the usual POSIX variables.
func Detect() Language {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return Parse(value)
		}
	}
	return Indonesian
}

// Code is the value sent as the upstream "lang" query parameter.
func (l Language) Code() string {
	if l == English {
		return "en"
	}
	return "id"
}

func (l Language) String() string {
	return l.Code()
}
