package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for loose matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, tok := range tokenizeCamelCase(s) {
		for _, r := range tok {
			if !isSeparator(r) {
				b.WriteRune(unicode.ToLower(r))
			}
		}
	}

	return b.String()
}

// NormalizeKey normalizes every dot-separated segment of a raw record key,
// keeping the dots so that prefixes stay distinguishable:
// "Desglose.Pagado_Total" -> "desglose.pagadototal".
func NormalizeKey(key string) string {
	if !strings.Contains(key, ".") {
		return NormalizeIdent(key)
	}

	parts := strings.Split(key, ".")
	for i, p := range parts {
		parts[i] = NormalizeIdent(p)
	}

	return strings.Join(parts, ".")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "parent_id" -> ["parent", "id"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports a lower->upper transition ("orderID" splits before 'I')
// or the end of an acronym ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
