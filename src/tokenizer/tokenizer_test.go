package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"words and punctuation", "Hello, World!", []string{"hello", ",", "world", "!"}},
		{"digits only", "123", []string{}},
		{"empty", "", []string{}},
		{"whitespace", " \t\n ", []string{}},
		{"all punctuation marks", ".,!?;:", []string{".", ",", "!", "?", ";", ":"}},
		{"quotes and dashes split words", `"don't" re-use`, []string{"don", "t", "re", "use"}},
		{"digits split words", "abc123def", []string{"abc", "def"}},
		{"non ascii letters are skipped", "Café olé", []string{"caf", "ol"}},
		{"mixed case", "ThE QuIcK", []string{"the", "quick"}},
		{"repeated punctuation", "wait...", []string{"wait", ".", ".", "."}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	text := "It was the best of times, it was the worst of times; it was..."
	assert.Equal(t, Tokenize(text), Tokenize(text))
}

func TestTokenizeNeverProducesSentinels(t *testing.T) {
	for _, tok := range Tokenize("<START> <END> start end") {
		assert.NotEqual(t, StartToken, tok)
		assert.NotEqual(t, EndToken, tok)
	}
}

func TestPad(t *testing.T) {
	tokens := []string{"a", "b"}
	padded := Pad(tokens, 2)
	require.Len(t, padded, 6)
	assert.Equal(t, []string{StartToken, StartToken, "a", "b", EndToken, EndToken}, padded)

	// the input must not be touched
	assert.Equal(t, []string{"a", "b"}, tokens)

	assert.Equal(t, []string{StartToken, EndToken}, Pad(nil, 1))
	assert.Equal(t, []string{"x"}, Pad([]string{"x"}, 0))
}

func TestTokenizeAndPad(t *testing.T) {
	assert.Equal(t, []string{StartToken, "hi", "!", EndToken}, TokenizeAndPad("Hi!", 1))
}
