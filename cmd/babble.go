// Copyright © 2017 Will Rowe <will.rowe@stfc.ac.uk>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"

	rng "github.com/leesper/go_rng"
	"github.com/spf13/cobra"
	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/markov"
	"github.com/will-rowe/quill/src/misc"
)

// the command line arguments
var (
	authorDir   *string     // directory containing the texts of one author
	length      *int        // maximum number of tokens to generate
	seed        *int64      // seed for the random number generator
	babbleModel *modelFlags // order and file extensions
)

// babbleCmd is used by cobra
var babbleCmd = &cobra.Command{
	Use:   "babble",
	Short: "Generate random text in the style of one author",
	Long:  `Generate random text by walking a Markov model trained on the texts of one author`,
	Run: func(cmd *cobra.Command, args []string) {
		runBabble(cmd)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// init the command line arguments
func init() {
	authorDir = babbleCmd.Flags().StringP("authorDir", "a", "", "directory containing the texts of one author - required")
	length = babbleCmd.Flags().IntP("length", "l", 100, "maximum number of tokens to generate")
	seed = babbleCmd.Flags().Int64("seed", time.Now().UnixNano(), "seed for the random number generator")
	babbleModel = addModelFlags(babbleCmd)
	babbleCmd.MarkFlagRequired("authorDir")
	RootCmd.AddCommand(babbleCmd)
}

// runBabble is the main function for the babble sub-command
func runBabble(cmd *cobra.Command) {
	defer startCommand("babble")()
	log.Printf("checking parameters...")
	config, err := buildConfig(cmd.Flags(), babbleModel)
	misc.ErrorCheck(err)
	misc.ErrorCheck(misc.CheckFile(*authorDir))
	if *length <= 0 {
		misc.ErrorCheck(fmt.Errorf("length must be greater than 0"))
	}
	log.Printf("\tmodel order: %d", config.Order)
	log.Printf("\tseed: %d", *seed)

	log.Printf("training model...")
	docs, err := corpus.ReadDocuments([]string{*authorDir}, config.Extensions)
	misc.ErrorCheck(err)
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	model, err := markov.NewModel(config.Order)
	misc.ErrorCheck(err)
	model.TrainText(strings.Join(texts, "\n"))
	log.Printf("\tfiles: %d, unique tokens: %d, tokens: %d", len(docs), model.VocabularySize(), model.TokenCount())

	log.Printf("generating text...")
	tokens := model.Generate(*length, rng.NewUniformGenerator(*seed))
	fmt.Println(markov.Detokenize(tokens))
	log.Println("finished")
}
