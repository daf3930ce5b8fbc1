package pipeline

import (
	"fmt"
	"sync"

	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/report"
)

// theBoss is used to orchestrate the minions
type theBoss struct {
	info              *Info                       // the runtime info for the pipeline
	minions           []*minion                   // the minions scoring documents
	documents         chan *corpus.Document       // the boss uses this channel to receive documents from the pipeline
	results           chan *report.Identification // the minions send their rankings here
	receivedDocCount  int                         // the number of documents the boss is sent during it's lifetime
	minionsDocCounter []int                       // the number of documents each minion scored
}

// scoreDocuments is a function to start off the minions to score documents and to return their boss
//
// The results channel is closed once every document has been scored.
func scoreDocuments(runtimeInfo *Info, inputChan chan *corpus.Document) (*theBoss, error) {
	if runtimeInfo.classifier == nil || runtimeInfo.classifier.Len() == 0 {
		return nil, fmt.Errorf("no author models attached to the runtime")
	}
	numMinions := runtimeInfo.NumProc
	if numMinions < 1 {
		numMinions = 1
	}

	// create a boss to orchestrate the minions and collect stats
	boss := &theBoss{
		info:      runtimeInfo,
		documents: make(chan *corpus.Document, BUFFERSIZE),
		results:   make(chan *report.Identification, BUFFERSIZE),
	}

	// launch the minions
	var wg sync.WaitGroup
	wg.Add(numMinions)
	boss.minions = make([]*minion, numMinions)
	for i := 0; i < numMinions; i++ {
		boss.minions[i] = newMinion(i, runtimeInfo, boss.documents, boss.results, &wg)
		boss.minions[i].start()
	}

	// forward documents to the minions, counting them as they go
	go func() {
		for doc := range inputChan {
			boss.receivedDocCount++
			boss.documents <- doc
		}
		close(boss.documents)
	}()

	// once the minions are done, close the results and record what each minion did
	go func() {
		wg.Wait()
		boss.minionsDocCounter = make([]int, numMinions)
		for i, minion := range boss.minions {
			boss.minionsDocCounter[i] = minion.docCount
		}
		close(boss.results)
	}()
	return boss, nil
}
