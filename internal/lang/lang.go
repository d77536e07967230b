// Package lang normalizes the language codes used to filter comments.
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Canonical parses a BCP 47 code and returns its canonical form.
// An empty code means "no filter" and is returned unchanged.
func Canonical(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return tag.String(), nil
}

// Name returns the English display name for a code, or "All languages"
// for the empty code. Unparseable codes are returned as-is.
func Name(code string) string {
	if code == "" {
		return "All languages"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// ParseList canonicalizes a comma-separated list of codes, dropping
// blanks and duplicates while keeping the first-seen order.
func ParseList(s string) ([]string, error) {
	var codes []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		c, err := Canonical(part)
		if err != nil {
			return nil, err
		}
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		codes = append(codes, c)
	}
	return codes, nil
}
