// file: internal/spelling/token.go
// version: 1.0.0
// guid: 6d1f3a5c-8b0e-4a2c-9e4f-7b9d1c3e5a7f

package spelling

import (
	"strings"
	"unicode"
)

// TokenKind classifies a whitespace-delimited piece of a road name.
type TokenKind int

const (
	// Word is ordinary spelling content.
	Word TokenKind = iota
	// Identifier is a route designator: the "A" in "Road A", the "12c" in
	// "12c Street", the "Y6" in "Y6 Drive". Names with different
	// identifiers belong to different roads, so identifiers are never
	// flagged as spelling differences.
	Identifier
)

// Token is a substring of a name tagged with its classification.
type Token struct {
	Text string
	Kind TokenKind
}

// cjkNumerals holds the CJK Unified Ideograph numbers zero through twelve
// (e.g. 四). These are not in Unicode category Nd, so they need their own
// table.
var cjkNumerals = map[rune]bool{
	'〇': true, // zero, U+3007
	'一': true, // one, U+4E00
	'二': true, // two, U+4E8C
	'三': true, // three, U+4E09
	'四': true, // four, U+56DB
	'五': true, // five, U+4E94
	'六': true, // six, U+516D
	'七': true, // seven, U+4E03
	'八': true, // eight, U+516B
	'九': true, // nine, U+4E5D
	'十': true, // ten, U+5341
	'廿': true, // eleven, U+5EFF
	'卅': true, // twelve, U+5345
}

// Tokenize splits a name on whitespace and classifies each piece. Empty and
// all-whitespace names yield no tokens.
func Tokenize(name string) []Token {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		kind := Word
		if IsIdentifier(f) {
			kind = Identifier
		}
		tokens = append(tokens, Token{Text: f, Kind: kind})
	}
	return tokens
}

// IsIdentifier reports whether a token is a route designator rather than
// spelling content. A token qualifies when it contains a decimal digit, when
// it is a single character optionally wrapped in single punctuation marks,
// or when it contains a CJK ideographic numeral.
func IsIdentifier(token string) bool {
	runes := []rune(token)
	for _, r := range runes {
		if unicode.IsDigit(r) || cjkNumerals[r] {
			return true
		}
	}
	switch len(runes) {
	case 1:
		return true
	case 2:
		return unicode.IsPunct(runes[0]) || unicode.IsPunct(runes[1])
	case 3:
		return unicode.IsPunct(runes[0]) && unicode.IsPunct(runes[2])
	}
	return false
}

// identifiers returns the identifier tokens of a name, duplicates kept.
func identifiers(name string) []string {
	var out []string
	for _, tok := range Tokenize(name) {
		if tok.Kind == Identifier {
			out = append(out, tok.Text)
		}
	}
	return out
}
