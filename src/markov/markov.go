// Package markov contains the order-N Markov (n-gram) model used to score how well a text fits an author
package markov

import (
	"math"
	"sync"

	"github.com/pkg/errors"
	"github.com/will-rowe/quill/src/tokenizer"
)

var (
	// ErrInvalidOrder is returned when a model is requested with an order below 1
	ErrInvalidOrder = errors.New("model order must be a positive integer")

	// ErrInvalidSmoothing is returned when the smoothing constant would allow zero or negative probabilities
	ErrInvalidSmoothing = errors.New("smoothing must be a finite number greater than zero")
)

// Model is an order-N Markov model trained on a single corpus
//
// A Model is built empty, trained once (each call to Train replaces the previous state) and is then
// safe for concurrent scoring.
type Model struct {
	order int

	mu         sync.RWMutex
	followers  map[string][]string // context key -> every token that followed the context, in training order
	vocabulary map[string]struct{} // distinct tokens that were recorded as followers
	tokenCount int                 // length of the padded training sequence
	cache      *followCountCache
}

// NewModel is the Model constructor
func NewModel(order int) (*Model, error) {
	if order <= 0 {
		return nil, errors.Wrapf(ErrInvalidOrder, "got %d", order)
	}
	return &Model{
		order:      order,
		followers:  make(map[string][]string),
		vocabulary: make(map[string]struct{}),
		cache:      newFollowCountCache(),
	}, nil
}

// Order returns the number of tokens in each context
func (model *Model) Order() int {
	return model.order
}

// VocabularySize returns the number of distinct tokens recorded during training
func (model *Model) VocabularySize() int {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return len(model.vocabulary)
}

// TokenCount returns the length of the (padded) sequence the model was last trained on
func (model *Model) TokenCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return model.tokenCount
}

// ContextCount returns the number of distinct contexts recorded during training
func (model *Model) ContextCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return len(model.followers)
}

// Followers returns a copy of the tokens that followed a context during training
func (model *Model) Followers(context NGram) []string {
	model.mu.RLock()
	defer model.mu.RUnlock()
	follows := model.followers[context.key()]
	if follows == nil {
		return nil
	}
	return append([]string(nil), follows...)
}

// InVocabulary reports if a token was recorded during training
func (model *Model) InVocabulary(token string) bool {
	model.mu.RLock()
	defer model.mu.RUnlock()
	_, ok := model.vocabulary[token]
	return ok
}

// Train builds the model from a padded token sequence, replacing anything from a previous training run
//
// Every context of order tokens is recorded along with the token that follows it. A sequence that is
// not longer than the order records nothing and leaves the model trained but empty.
func (model *Model) Train(tokens []string) {
	followers := make(map[string][]string)
	vocabulary := make(map[string]struct{})
	for _, pair := range MakePairs(tokens, model.order) {
		key := pair.CurrentState.key()
		followers[key] = append(followers[key], pair.NextState)
		vocabulary[pair.NextState] = struct{}{}
	}

	model.mu.Lock()
	model.followers = followers
	model.vocabulary = vocabulary
	model.tokenCount = len(tokens)
	model.cache.reset()
	model.mu.Unlock()
}

// TrainText tokenizes and pads a text, then trains the model on it
func (model *Model) TrainText(text string) {
	model.Train(tokenizer.TokenizeAndPad(text, model.order))
}

// ScoreText returns the smoothed log-likelihood of a text under the model
//
// Each position contributes ln((nextCount + smoothing) / (contextCount + smoothing * V)), where V is
// the vocabulary size (at least 1). The sum is divided by the number of distinct contexts in the text,
// so that every model scores a text on the same scale. Negative infinity is returned when the text has
// nothing to score or the model recorded nothing during training.
func (model *Model) ScoreText(text string, smoothing float64) (float64, error) {
	if !(smoothing > 0) || math.IsInf(smoothing, 1) {
		return 0, errors.Wrapf(ErrInvalidSmoothing, "got %v", smoothing)
	}
	padded := tokenizer.TokenizeAndPad(text, model.order)
	if len(padded) <= model.order {
		return math.Inf(-1), nil
	}

	model.mu.RLock()
	defer model.mu.RUnlock()
	if len(model.followers) == 0 {
		return math.Inf(-1), nil
	}
	vocabSize := float64(len(model.vocabulary))
	if vocabSize < 1 {
		vocabSize = 1
	}

	logSum := 0.0
	uniqueContexts := make(map[string]struct{})
	for _, pair := range MakePairs(padded, model.order) {
		key := pair.CurrentState.key()
		uniqueContexts[key] = struct{}{}

		contextCount := len(model.followers[key])
		nextCount := model.cache.count(key, pair.NextState, model.followers)

		prob := (float64(nextCount) + smoothing) / (float64(contextCount) + smoothing*vocabSize)
		if prob <= 0 {
			prob = 1.0 / vocabSize
		}
		logSum += math.Log(prob)
	}
	return logSum / float64(len(uniqueContexts)), nil
}
