package markov

import "strings"

// keySeparator joins the tokens of an NGram into a map key - it can never occur inside a token
const keySeparator = "\x1f"

//Pair is a pair of consecutive states in a sequence
type Pair struct {
	CurrentState NGram  // n = order of the chain
	NextState    string // n = 1
}

//NGram is an ordered run of tokens used as the context of a chain
type NGram []string

// key returns a value that is equal for any two NGrams holding the same tokens in the same order
func (ngram NGram) key() string {
	return strings.Join(ngram, keySeparator)
}

// String returns the NGram as space separated tokens
func (ngram NGram) String() string {
	return strings.Join(ngram, " ")
}

func array(value string, count int) []string {
	arr := make([]string, count)
	for i := range arr {
		arr[i] = value
	}
	return arr
}

//MakePairs generates n-gram pairs of consecutive states in a sequence
func MakePairs(tokens []string, order int) []Pair {
	if order <= 0 || len(tokens) <= order {
		return nil
	}
	pairs := make([]Pair, 0, len(tokens)-order)
	for i := 0; i < len(tokens)-order; i++ {
		pair := Pair{
			CurrentState: tokens[i : i+order : i+order],
			NextState:    tokens[i+order],
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
