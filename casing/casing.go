// Package casing converts identifiers between the storage column convention
// (snake_case) and the document property conventions (camelCase, PascalCase).
package casing

import (
	"strings"
	"unicode"
)

// ToUnderscore converts a camelCase or PascalCase identifier into snake_case.
// A new segment starts at every uppercase letter that follows a lowercase
// letter, or that precedes one when it is not the first character, so acronym
// runs stay in one segment: "userId" becomes "user_id" and "HTMLElement"
// becomes "html_element".
func ToUnderscore(name string) string {
	runes := []rune(name)
	n := len(runes)
	var buf strings.Builder
	buf.Grow(n + 3)

	for i := 0; i < n; i++ {
		if i > 0 && unicode.IsUpper(runes[i]) && ((i+1 < n && unicode.IsLower(runes[i+1])) || unicode.IsLower(runes[i-1])) {
			buf.WriteRune('_')
		}
		buf.WriteRune(unicode.ToLower(runes[i]))
	}
	return buf.String()
}

// ToLowerCamel converts a snake_case identifier into camelCase. The first
// segment is kept as is; empty segments produced by leading, trailing or
// doubled underscores are skipped.
func ToLowerCamel(name string) string {
	return fromUnderscore(name, false)
}

// ToUpperCamel converts a snake_case identifier into PascalCase.
func ToUpperCamel(name string) string {
	return fromUnderscore(name, true)
}

func fromUnderscore(name string, upperFirst bool) string {
	var buf strings.Builder
	buf.Grow(len(name))
	first := true
	for _, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}
		if first && !upperFirst {
			buf.WriteString(segment)
		} else {
			buf.WriteString(upperFirstRune(segment))
		}
		first = false
	}
	return buf.String()
}

func upperFirstRune(segment string) string {
	runes := []rune(segment)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
