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
	"os"

	"github.com/spf13/cobra"
	"github.com/will-rowe/quill/src/corpus"
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/pipeline"
	"github.com/will-rowe/quill/src/version"
)

// the command line arguments
var (
	trainingDir   *string     // directory (or archive) containing one folder per author
	inputs        *[]string   // files or directories of unknown documents
	reportFile    *string     // file to save the run report to
	timings       *bool       // print the time taken to score each model
	identifyModel *modelFlags // order, smoothing and file extensions
)

// identifyCmd is used by cobra
var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Train a model per author and identify the most likely author of unknown texts",
	Long:  `Train a model per author and identify the most likely author of unknown texts`,
	Run: func(cmd *cobra.Command, args []string) {
		runIdentify(cmd)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// init the command line arguments
func init() {
	trainingDir = identifyCmd.Flags().StringP("trainingDir", "t", "", "directory or archive containing one folder of texts per author - required")
	inputs = identifyCmd.Flags().StringSliceP("input", "i", []string{}, "unknown text file(s) or directories of them - required")
	reportFile = identifyCmd.Flags().StringP("report", "o", "", "if set, save the settings and rankings to this file (.qrep)")
	timings = identifyCmd.Flags().Bool("timings", true, "print the time taken to score each author model")
	identifyModel = addModelFlags(identifyCmd)
	identifyCmd.MarkFlagRequired("trainingDir")
	identifyCmd.MarkFlagRequired("input")
	RootCmd.AddCommand(identifyCmd)
}

// runIdentify is the main function for the identify sub-command
func runIdentify(cmd *cobra.Command) {
	defer startCommand("identify")()

	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	config, err := buildConfig(cmd.Flags(), identifyModel)
	misc.ErrorCheck(err)
	misc.ErrorCheck(identifyParamCheck())
	log.Printf("\tprocessors: %d", config.Proc)
	log.Printf("\tmodel order: %d", config.Order)
	log.Printf("\tsmoothing: %0.3f", config.Smoothing)
	log.Printf("\ttraining data: %v", *trainingDir)
	for _, input := range *inputs {
		log.Printf("\tinput: %v", input)
	}
	info := pipeline.NewInfo(version.VERSION, config)
	info.Model.TrainingDir = *trainingDir
	info.Identify = pipeline.IdentifyCmd{Inputs: *inputs, ReportFile: *reportFile, Timings: *timings}
	info.Profiling = *profiling

	// train the author models
	log.Printf("training author models...")
	trainingPipeline := pipeline.NewPipeline()
	corpusReader := pipeline.NewCorpusReader(info)
	modelTrainer := pipeline.NewModelTrainer(info)
	corpusReader.Connect(*trainingDir)
	modelTrainer.Connect(corpusReader)
	trainingPipeline.AddProcesses(corpusReader, modelTrainer)
	trainingPipeline.Run()
	log.Printf("\tnumber of author models trained: %d", info.GetClassifier().Len())
	log.Printf("\ttraining took %v", trainingPipeline.GetElapsed())

	// score the unknown documents against each model
	log.Printf("identifying documents...")
	identifyPipeline := pipeline.NewPipeline()
	docReader := pipeline.NewDocumentReader(info)
	docScorer := pipeline.NewDocumentScorer(info)
	collector := pipeline.NewReportCollector(info, os.Stdout)
	docReader.Connect(*inputs)
	docScorer.Connect(docReader)
	collector.Connect(docScorer)
	identifyPipeline.AddProcesses(docReader, docScorer, collector)
	log.Printf("\tnumber of processes added to the identification pipeline: %d", identifyPipeline.GetNumProcesses())
	identifyPipeline.Run()
	log.Printf("\tidentification took %v", identifyPipeline.GetElapsed())

	if *reportFile != "" {
		log.Printf("saving report...")
		misc.ErrorCheck(info.Dump(*reportFile))
		log.Printf("\tsaved report to \"%v\"", *reportFile)
	}
	log.Println("finished")
}

// identifyParamCheck is a function to check user supplied parameters
func identifyParamCheck() error {
	if corpus.IsArchive(*trainingDir) {
		if err := misc.CheckFile(*trainingDir); err != nil {
			return err
		}
	} else if err := misc.CheckDir(*trainingDir); err != nil {
		return err
	}
	if len(*inputs) == 0 {
		return fmt.Errorf("no unknown texts given, use --input")
	}
	for _, input := range *inputs {
		if err := misc.CheckFile(input); err != nil {
			return err
		}
	}
	if *reportFile != "" {
		if err := misc.CheckExt(*reportFile, []string{"qrep"}); err != nil {
			return err
		}
	}
	return nil
}
