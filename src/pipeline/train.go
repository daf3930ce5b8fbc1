package pipeline

/*
 this part of the pipeline collects the corpus for each author and trains a model on it
*/

import (
	"context"
	"fmt"
	"log"

	"github.com/will-rowe/quill/src/classifier"
	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/report"
)

// CorpusReader is a pipeline process that reads the training data and sends on one corpus per author
type CorpusReader struct {
	info   *Info
	input  string
	output chan *corpus.Corpus
}

// NewCorpusReader is the constructor
func NewCorpusReader(info *Info) *CorpusReader {
	return &CorpusReader{info: info, output: make(chan *corpus.Corpus, BUFFERSIZE)}
}

// Connect is the method to connect the CorpusReader to a training directory or archive
func (proc *CorpusReader) Connect(input string) {
	proc.input = input
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *CorpusReader) Run() {
	defer close(proc.output)
	corpora, err := corpus.ReadAuthors(proc.input, proc.info.Model.Extensions)
	misc.ErrorCheck(err)
	if len(corpora) == 0 {
		misc.ErrorCheck(fmt.Errorf("no author directories found in %v", proc.input))
	}
	log.Printf("\t%s has %d author directories", proc.input, len(corpora))
	for _, c := range corpora {
		proc.output <- c
	}
}

// ModelTrainer is a pipeline process that trains one model per received corpus and attaches them to the runtime
type ModelTrainer struct {
	info      *Info
	input     chan *corpus.Corpus
	summaries []report.AuthorSummary
}

// NewModelTrainer is the constructor
func NewModelTrainer(info *Info) *ModelTrainer {
	return &ModelTrainer{info: info}
}

// Connect is the method to connect the ModelTrainer to the output of a CorpusReader
func (proc *ModelTrainer) Connect(previous *CorpusReader) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *ModelTrainer) Run() {
	authorModels, err := classifier.New(proc.info.Model.Order)
	misc.ErrorCheck(err)

	// gather every corpus, then train the models in parallel
	received := make(map[string]*corpus.Corpus)
	corpora := make(map[string]string)
	for c := range proc.input {
		if _, ok := received[c.Author]; ok {
			misc.ErrorCheck(fmt.Errorf("duplicate author in training data: %v", c.Author))
		}
		received[c.Author] = c
		corpora[c.Author] = c.Text
	}
	misc.ErrorCheck(authorModels.TrainAuthors(context.Background(), corpora, proc.info.NumProc))

	proc.summaries = make([]report.AuthorSummary, 0, len(received))
	for _, author := range authorModels.Authors() {
		model, _ := authorModels.Model(author)
		proc.summaries = append(proc.summaries, report.AuthorSummary{
			Author:         author,
			Files:          len(received[author].Files),
			Order:          model.Order(),
			VocabularySize: model.VocabularySize(),
			TokenCount:     model.TokenCount(),
			ContextCount:   model.ContextCount(),
		})
		log.Printf("\ttrained %v: %d files, %d unique tokens, %d tokens", author, len(received[author].Files), model.VocabularySize(), model.TokenCount())
	}
	proc.info.Authors = proc.summaries
	proc.info.AttachClassifier(authorModels)
}

// CollectOutput returns a summary of each trained model
func (proc *ModelTrainer) CollectOutput() []report.AuthorSummary {
	return proc.summaries
}
