package markov

import (
	"strings"

	rng "github.com/leesper/go_rng"
	"github.com/will-rowe/quill/src/tokenizer"
)

// Generate performs a random walk through the trained model and returns up to length tokens
//
// The walk starts from the all-start context and picks each next token from the followers of the
// current context, so frequent followers are picked more often. It ends early when the end sentinel
// is drawn or the context was never seen. Sentinels are never returned.
func (model *Model) Generate(length int, gen *rng.UniformGenerator) []string {
	model.mu.RLock()
	defer model.mu.RUnlock()

	output := []string{}
	context := NGram(array(tokenizer.StartToken, model.order))
	for len(output) < length {
		follows := model.followers[context.key()]
		if len(follows) == 0 {
			break
		}

		choice := int(gen.Float64Range(0.0, float64(len(follows))))
		if choice >= len(follows) {
			choice = len(follows) - 1
		}
		next := follows[choice]
		if next == tokenizer.EndToken {
			break
		}
		output = append(output, next)
		context = append(context[1:len(context):len(context)], next)
	}
	return output
}

// Detokenize joins tokens back into readable text, attaching punctuation to the preceding word
func Detokenize(tokens []string) string {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 && !isPunctuation(token) {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
	}
	return sb.String()
}

func isPunctuation(token string) bool {
	return len(token) == 1 && strings.ContainsAny(token, ".,!?;:")
}
