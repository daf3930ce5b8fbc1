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
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/pipeline"
	"github.com/will-rowe/quill/src/report"
	"github.com/will-rowe/quill/src/version"
)

// the command line arguments
var (
	statsTrainingDir *string     // directory (or archive) containing one folder per author
	statsModel       *modelFlags // order and file extensions
)

// statsCmd is used by cobra
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Train a model per author and print the size of each model",
	Long:  `Train a model per author and print the size of each model`,
	Run: func(cmd *cobra.Command, args []string) {
		runStats(cmd)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// init the command line arguments
func init() {
	statsTrainingDir = statsCmd.Flags().StringP("trainingDir", "t", "", "directory or archive containing one folder of texts per author - required")
	statsModel = addModelFlags(statsCmd)
	statsCmd.MarkFlagRequired("trainingDir")
	RootCmd.AddCommand(statsCmd)
}

// runStats is the main function for the stats sub-command
func runStats(cmd *cobra.Command) {
	defer startCommand("stats")()
	log.Printf("checking parameters...")
	config, err := buildConfig(cmd.Flags(), statsModel)
	misc.ErrorCheck(err)
	if corpus.IsArchive(*statsTrainingDir) {
		misc.ErrorCheck(misc.CheckFile(*statsTrainingDir))
	} else {
		misc.ErrorCheck(misc.CheckDir(*statsTrainingDir))
	}
	log.Printf("\tmodel order: %d", config.Order)
	info := pipeline.NewInfo(version.VERSION, config)
	info.Model.TrainingDir = *statsTrainingDir

	log.Printf("training author models...")
	trainingPipeline := pipeline.NewPipeline()
	corpusReader := pipeline.NewCorpusReader(info)
	modelTrainer := pipeline.NewModelTrainer(info)
	corpusReader.Connect(*statsTrainingDir)
	modelTrainer.Connect(corpusReader)
	trainingPipeline.AddProcesses(corpusReader, modelTrainer)
	trainingPipeline.Run()
	misc.ErrorCheck(report.WriteSummary(os.Stdout, modelTrainer.CollectOutput()))
	log.Println("finished")
}
