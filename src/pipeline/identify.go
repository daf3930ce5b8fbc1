package pipeline

/*
 this part of the pipeline reads the unknown documents, ranks the authors for each one and reports the results
*/

import (
	"fmt"
	"io"
	"log"

	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/report"
)

// DocumentReader is a pipeline process that reads the unknown documents
type DocumentReader struct {
	info   *Info
	input  []string
	output chan *corpus.Document
}

// NewDocumentReader is the constructor
func NewDocumentReader(info *Info) *DocumentReader {
	return &DocumentReader{info: info, output: make(chan *corpus.Document, BUFFERSIZE)}
}

// Connect is the method to connect the DocumentReader to some files or directories
func (proc *DocumentReader) Connect(input []string) {
	proc.input = input
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *DocumentReader) Run() {
	defer close(proc.output)
	docs, err := corpus.ReadDocuments(proc.input, proc.info.Model.Extensions)
	misc.ErrorCheck(err)
	if len(docs) == 0 {
		misc.ErrorCheck(fmt.Errorf("no documents found to identify"))
	}
	for _, doc := range docs {
		proc.output <- doc
	}
}

// DocumentScorer is a pipeline process that ranks every author model against each document
type DocumentScorer struct {
	info   *Info
	input  chan *corpus.Document
	output chan *report.Identification
	stats  [2]int
}

// NewDocumentScorer is the constructor
func NewDocumentScorer(info *Info) *DocumentScorer {
	return &DocumentScorer{info: info, output: make(chan *report.Identification, BUFFERSIZE)}
}

// Connect is the method to connect the DocumentScorer to the output of a DocumentReader
func (proc *DocumentScorer) Connect(previous *DocumentReader) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *DocumentScorer) Run() {
	defer close(proc.output)
	boss, err := scoreDocuments(proc.info, proc.input)
	misc.ErrorCheck(err)
	scored := 0
	for result := range boss.results {
		scored++
		proc.output <- result
	}
	proc.stats = [2]int{boss.receivedDocCount, scored}
	log.Printf("\tnumber of documents received: %d", boss.receivedDocCount)
	log.Printf("\tnumber of author models: %d", proc.info.classifier.Len())
	for i, count := range boss.minionsDocCounter {
		log.Printf("\t\tminion %d scored %d documents", i, count)
	}
}

// CollectStats returns the number of documents received and scored
func (proc *DocumentScorer) CollectStats() [2]int {
	return proc.stats
}

// ReportCollector is a pipeline process that gathers the rankings, stores them in the runtime info and prints them
type ReportCollector struct {
	info   *Info
	input  chan *report.Identification
	writer io.Writer
}

// NewReportCollector is the constructor, a nil writer collects without printing
func NewReportCollector(info *Info, writer io.Writer) *ReportCollector {
	return &ReportCollector{info: info, writer: writer}
}

// Connect is the method to connect the ReportCollector to the output of a DocumentScorer
func (proc *ReportCollector) Connect(previous *DocumentScorer) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *ReportCollector) Run() {
	var ids []*report.Identification
	for id := range proc.input {
		ids = append(ids, id)
	}

	// the minions finish in any order, so sort before reporting
	report.SortIdentifications(ids)
	proc.info.Identifications = ids
	if proc.writer != nil {
		misc.ErrorCheck(report.WriteAll(proc.writer, ids, proc.info.Identify.Timings))
	}
}

// CollectOutput returns the identifications in document order
func (proc *ReportCollector) CollectOutput() []*report.Identification {
	return proc.info.Identifications
}
