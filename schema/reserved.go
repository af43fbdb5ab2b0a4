package schema

import "strings"

// phpReservedWords is the PHP reserved-word set identifiers are checked
// against, including soft-reserved type names.
var phpReservedWords = map[string]struct{}{
	"abstract": {}, "and": {}, "array": {}, "as": {}, "break": {},
	"callable": {}, "case": {}, "catch": {}, "class": {}, "clone": {},
	"const": {}, "continue": {}, "declare": {}, "default": {}, "die": {},
	"do": {}, "echo": {}, "else": {}, "elseif": {}, "empty": {},
	"enddeclare": {}, "endfor": {}, "endforeach": {}, "endif": {},
	"endswitch": {}, "endwhile": {}, "eval": {}, "exit": {}, "extends": {},
	"final": {}, "finally": {}, "for": {}, "foreach": {}, "function": {},
	"global": {}, "goto": {}, "if": {}, "implements": {}, "include": {},
	"include_once": {}, "instanceof": {}, "insteadof": {}, "interface": {},
	"isset": {}, "list": {}, "namespace": {}, "new": {}, "or": {},
	"print": {}, "private": {}, "protected": {}, "public": {},
	"require": {}, "require_once": {}, "return": {}, "static": {},
	"switch": {}, "throw": {}, "trait": {}, "try": {}, "unset": {},
	"use": {}, "var": {}, "while": {}, "xor": {}, "yield": {},
	"int": {}, "float": {}, "bool": {}, "string": {}, "true": {},
	"false": {}, "null": {}, "void": {}, "iterable": {}, "object": {},
	"mixed": {}, "never": {},
}

// isReservedWord reports whether word is PHP-reserved, case-insensitively.
func isReservedWord(word string) bool {
	_, ok := phpReservedWords[strings.ToLower(word)]
	return ok
}
