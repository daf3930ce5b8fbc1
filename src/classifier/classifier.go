// Package classifier attributes text to an author by scoring it against one Markov model per author
package classifier

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/will-rowe/quill/src/markov"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyModelSet is returned when a ranking is requested before any author has been trained
var ErrEmptyModelSet = errors.New("no author models have been trained")

// Result is the score of a text under a single author's model
type Result struct {
	Author  string        `objconv:"author"`
	Score   float64       `objconv:"score"`
	Elapsed time.Duration `objconv:"elapsed"` // time taken to score, for reporting only
}

// Classifier holds one trained model per author, all of the same order
type Classifier struct {
	order  int
	mu     sync.RWMutex
	models map[string]*markov.Model
}

// New is the Classifier constructor
func New(order int) (*Classifier, error) {
	if order <= 0 {
		return nil, errors.Wrapf(markov.ErrInvalidOrder, "got %d", order)
	}
	return &Classifier{
		order:  order,
		models: make(map[string]*markov.Model),
	}, nil
}

// Order returns the order shared by every model in the classifier
func (classifier *Classifier) Order() int {
	return classifier.order
}

// Len returns the number of trained authors
func (classifier *Classifier) Len() int {
	classifier.mu.RLock()
	defer classifier.mu.RUnlock()
	return len(classifier.models)
}

// Authors returns the trained author names in ascending order
func (classifier *Classifier) Authors() []string {
	classifier.mu.RLock()
	defer classifier.mu.RUnlock()
	authors := make([]string, 0, len(classifier.models))
	for author := range classifier.models {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	return authors
}

// Model returns the model trained for an author
func (classifier *Classifier) Model(author string) (*markov.Model, bool) {
	classifier.mu.RLock()
	defer classifier.mu.RUnlock()
	model, ok := classifier.models[author]
	return model, ok
}

// TrainAuthor trains a new model on the corpus and stores it under the author's name, replacing any previous model
func (classifier *Classifier) TrainAuthor(author, corpus string) error {
	model, err := markov.NewModel(classifier.order)
	if err != nil {
		return err
	}
	model.TrainText(corpus)
	classifier.mu.Lock()
	classifier.models[author] = model
	classifier.mu.Unlock()
	return nil
}

// TrainAuthors trains one model per corpus, running up to workers trainings at once
//
// Models share no state, so the result is the same as training them one after another.
func (classifier *Classifier) TrainAuthors(ctx context.Context, corpora map[string]string, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(workers, len(corpora)))
	for author, corpus := range corpora {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return classifier.TrainAuthor(author, corpus)
		})
	}
	return g.Wait()
}

// RankAuthors scores the text against every model and returns the results, best first
//
// Equal scores are ordered by author name.
func (classifier *Classifier) RankAuthors(text string, smoothing float64) ([]Result, error) {
	return classifier.RankAuthorsContext(context.Background(), text, smoothing, 1)
}

// RankAuthorsContext is RankAuthors with the models scored by up to workers goroutines
//
// Cancelling the context stops further models from being scored and returns the context error.
func (classifier *Classifier) RankAuthorsContext(ctx context.Context, text string, smoothing float64, workers int) ([]Result, error) {
	classifier.mu.RLock()
	authors := make([]string, 0, len(classifier.models))
	models := make([]*markov.Model, 0, len(classifier.models))
	for author, model := range classifier.models {
		authors = append(authors, author)
		models = append(models, model)
	}
	classifier.mu.RUnlock()
	if len(models) == 0 {
		return nil, ErrEmptyModelSet
	}

	// each goroutine writes its own slot, no lock needed
	results := make([]Result, len(models))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(workers, len(models)))
	for i := range models {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			score, err := models[i].ScoreText(text, smoothing)
			if err != nil {
				return errors.Wrapf(err, "could not score with model for %v", authors[i])
			}
			results[i] = Result{Author: authors[i], Score: score, Elapsed: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	SortResults(results)
	return results, nil
}

// BestMatch returns the highest ranked author for the text
func (classifier *Classifier) BestMatch(text string, smoothing float64) (Result, error) {
	results, err := classifier.RankAuthors(text, smoothing)
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// SortResults orders results by score, highest first, breaking ties by author name
func SortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Author < results[j].Author
	})
}

// workerLimit clamps the requested number of workers to something sensible for the job count
func workerLimit(workers, jobs int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if jobs > 0 && workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
