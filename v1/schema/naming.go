package schema

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// Translate returns the wire-visible form of name under mode.
//
// Translate is pure and idempotent: translating an already translated name
// with the same mode returns it unchanged. Names without word separators are
// treated as already camel cased, so single letter words such as the "A" in
// "isABook" are not re-split.
func Translate(name string, mode NamingMode) string {
	switch mode {
	case Underscore:
		return strcase.ToSnake(name)
	case CamelCase:
		if !hasSeparator(name) {
			return lowerFirstWord(name)
		}
		return strcase.ToLowerCamel(name)
	case PascalCase:
		if !hasSeparator(name) {
			return upperFirst(name)
		}
		return strcase.ToCamel(name)
	default:
		return name
	}
}

func hasSeparator(name string) bool {
	return strings.ContainsAny(name, "_-. ")
}

func upperFirst(name string) string {
	r := []rune(name)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// lowerFirstWord lowercases the leading run of upper case letters. When the
// run is followed by a lower case letter its last letter starts the next
// word: "HTTPServer" becomes "httpServer".
func lowerFirstWord(name string) string {
	r := []rune(name)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) && unicode.IsLower(r[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
