// Package tokenizer converts raw text into the normalized word and punctuation tokens used by the n-gram models
package tokenizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// StartToken is the sentinel used to pad the beginning of a token sequence
	StartToken = "<START>"

	// EndToken is the sentinel used to pad the end of a token sequence
	EndToken = "<END>"
)

// punctuation holds the marks that are kept as single-character tokens
var punctuation = [256]bool{
	'.': true,
	',': true,
	'!': true,
	'?': true,
	';': true,
	':': true,
}

// isLetter reports if a byte is an ASCII letter (only lower case is possible after folding)
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Tokenize lower-cases the text and returns maximal runs of letters and single punctuation marks, in order
//
// All other characters (digits, whitespace, quotes, symbols, non-ASCII letters) are skipped. The returned
// slice is never nil.
func Tokenize(text string) []string {
	lowered := cases.Lower(language.Und).String(text)
	tokens := []string{}
	for i := 0; i < len(lowered); {
		b := lowered[i]
		switch {
		case isLetter(b):
			start := i
			for i < len(lowered) && isLetter(lowered[i]) {
				i++
			}
			tokens = append(tokens, lowered[start:i])
		case punctuation[b]:
			tokens = append(tokens, lowered[i:i+1])
			i++
		default:
			i++
		}
	}
	return tokens
}

// Pad returns a new slice holding order start sentinels, the tokens and then order end sentinels
func Pad(tokens []string, order int) []string {
	if order < 0 {
		order = 0
	}
	padded := make([]string, 0, len(tokens)+2*order)
	for i := 0; i < order; i++ {
		padded = append(padded, StartToken)
	}
	padded = append(padded, tokens...)
	for i := 0; i < order; i++ {
		padded = append(padded, EndToken)
	}
	return padded
}

// TokenizeAndPad is a helper that runs Tokenize followed by Pad
func TokenizeAndPad(text string, order int) []string {
	return Pad(Tokenize(text), order)
}
