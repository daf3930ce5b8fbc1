// Package report holds the results of a quill run and renders them as text
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/will-rowe/quill/src/classifier"
)

// nameWidth is the column width used for author names
const nameWidth = 14

var bestMatchColour = color.New(color.FgGreen, color.Bold)

// AuthorSummary describes the model trained for one author
type AuthorSummary struct {
	Author         string
	Files          int
	Order          int
	VocabularySize int
	TokenCount     int
	ContextCount   int
}

// Identification is the ranking of every author for one unknown document
type Identification struct {
	Name    string // base name of the document
	Path    string
	Ranking []classifier.Result // best first
}

// Best returns the top ranked result
func (id *Identification) Best() (classifier.Result, bool) {
	if len(id.Ranking) == 0 {
		return classifier.Result{}, false
	}
	return id.Ranking[0], true
}

// SortIdentifications orders identifications by document path
func SortIdentifications(ids []*Identification) {
	sort.SliceStable(ids, func(i, j int) bool { return ids[i].Path < ids[j].Path })
}

// WriteSummary prints one line per trained author
func WriteSummary(w io.Writer, summaries []AuthorSummary) error {
	for _, summary := range summaries {
		_, err := fmt.Fprintf(w, "training %s\torder %d with %d unique tokens, %d tokens\n",
			runewidth.FillLeft(summary.Author, nameWidth),
			summary.Order,
			summary.VocabularySize,
			summary.TokenCount)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteIdentification prints the timings (if requested), the best match and the full ranking for a document
func WriteIdentification(w io.Writer, id *Identification, timings bool) error {
	best, ok := id.Best()
	if !ok {
		_, err := fmt.Fprintf(w, "*** no authors ranked for %s\n", id.Name)
		return err
	}
	if timings {
		// timings are listed in author order so that runs can be compared
		byAuthor := append([]classifier.Result(nil), id.Ranking...)
		sort.Slice(byAuthor, func(i, j int) bool { return byAuthor[i].Author < byAuthor[j].Author })
		for _, result := range byAuthor {
			if _, err := fmt.Fprintf(w, "time: %1.2f for %s\n", result.Elapsed.Seconds(), result.Author); err != nil {
				return err
			}
		}
	}
	if _, err := bestMatchColour.Fprintf(w, "*** %1.2f\t%s for %s\n", best.Score, best.Author, id.Name); err != nil {
		return err
	}
	for _, result := range id.Ranking {
		if _, err := fmt.Fprintf(w, "%1.2f\t%s\n", result.Score, result.Author); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll prints every identification in turn
func WriteAll(w io.Writer, ids []*Identification, timings bool) error {
	for _, id := range ids {
		if err := WriteIdentification(w, id, timings); err != nil {
			return err
		}
	}
	return nil
}
