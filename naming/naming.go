// Package naming provides the case conversion and English inflection
// helpers used throughout schemly's generators.
//
// All functions are pure and deterministic. Pluralization and
// singularization are heuristic: they cover regular English nouns and
// round-trip on them (Pluralize(Singularize(w)) == w), but irregular
// nouns ("person", "mouse") are intentionally out of scope.
package naming

import (
	"strings"
	"unicode"
)

// SnakeCase converts a string to snake_case. An underscore is inserted
// before each uppercase letter that follows a lowercase letter.
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r)
	}
	return b.String()
}

// CamelCase converts a string to camelCase. Underscores, hyphens and
// whitespace act as word separators: the character following a separator
// is uppercased, every other character is lowercased.
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// PascalCase converts a string to PascalCase.
func PascalCase(s string) string {
	return UpperFirst(CamelCase(s))
}

// KebabCase converts a string to kebab-case.
func KebabCase(s string) string {
	return strings.ReplaceAll(SnakeCase(s), "_", "-")
}

// LowerFirst lowercases the first character of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// UpperFirst uppercases the first character of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Pluralize returns the plural form of a regular English noun.
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "y") && !hasVowelBeforeY(lower):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "sh"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"):
		return word + "es"
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"
	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + "ves"
	default:
		return word + "s"
	}
}

// Singularize returns the singular form of a regular English plural.
// It is the approximate inverse of Pluralize.
func Singularize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(lower, "ves") && len(word) > 3:
		if strings.HasSuffix(lower, "ives") {
			return word[:len(word)-4] + "ife"
		}
		return word[:len(word)-3] + "f"
	case strings.HasSuffix(lower, "ses"), strings.HasSuffix(lower, "shes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "xes"),
		strings.HasSuffix(lower, "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(lower, "s") && len(word) > 1:
		return word[:len(word)-1]
	default:
		return word
	}
}

// TableName derives the conventional storage table name for a model:
// the snake_cased, pluralized model name ("BlogPost" -> "blog_posts").
func TableName(model string) string {
	return Pluralize(SnakeCase(model))
}

// MethodName derives a relationship navigation method name from the
// target model name: the model name with its first character lowercased,
// pluralized when the relationship targets many records.
func MethodName(model string, plural bool) string {
	name := LowerFirst(model)
	if plural {
		return Pluralize(name)
	}
	return name
}

func hasVowelBeforeY(lower string) bool {
	if len(lower) < 2 {
		return false
	}
	switch lower[len(lower)-2] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
