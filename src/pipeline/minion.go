package pipeline

import (
	"context"
	"sync"

	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/report"
)

// minion is the base data type
type minion struct {
	id            int
	info          *Info
	inputChannel  chan *corpus.Document
	outputChannel chan *report.Identification
	docCount      int
	wg            *sync.WaitGroup
}

// newMinion is the constructor function
func newMinion(id int, runtimeInfo *Info, input chan *corpus.Document, output chan *report.Identification, wg *sync.WaitGroup) *minion {
	return &minion{
		id:            id,
		info:          runtimeInfo,
		inputChannel:  input,
		outputChannel: output,
		docCount:      0,
		wg:            wg,
	}
}

// start is a method to start the minion running
func (minion *minion) start() {
	go func() {
		defer minion.wg.Done()
		for {

			// pull documents from the queue until done
			doc, ok := <-minion.inputChannel
			if !ok {
				return
			}
			minion.docCount++

			// score the document against every author model, the minion is already running in parallel so the models are scored in series
			ranking, err := minion.info.classifier.RankAuthorsContext(context.Background(), doc.Text, minion.info.Model.Smoothing, 1)
			misc.ErrorCheck(err)

			// send the ranking back to the boss
			minion.outputChannel <- &report.Identification{
				Name:    doc.Name,
				Path:    doc.Path,
				Ranking: ranking,
			}
		}
	}()
}
