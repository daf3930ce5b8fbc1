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
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/pipeline"
	"github.com/will-rowe/quill/src/report"
	"github.com/will-rowe/quill/src/version"
)

// the command line arguments
var (
	savedReport *string // report file written by identify
)

// reportCmd is used by cobra
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a report saved by the identify subcommand",
	Long:  `Print a report saved by the identify subcommand`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// init the command line arguments
func init() {
	savedReport = reportCmd.Flags().StringP("report", "r", "", "report file (.qrep) - required")
	reportCmd.MarkFlagRequired("report")
	RootCmd.AddCommand(reportCmd)
}

// runReport is the main function for the report sub-command
func runReport() {
	defer startCommand("report")()
	misc.ErrorCheck(misc.CheckFile(*savedReport))
	misc.ErrorCheck(misc.CheckExt(*savedReport, []string{"qrep"}))
	info := new(pipeline.Info)
	misc.ErrorCheck(info.Load(*savedReport))
	if info.Version != version.VERSION {
		log.Printf("\tthe report was created with a different version of quill (%v)", info.Version)
	}
	log.Printf("\tmodel order: %d", info.Model.Order)
	log.Printf("\tsmoothing: %0.3f", info.Model.Smoothing)
	log.Printf("\ttraining data: %v", info.Model.TrainingDir)
	misc.ErrorCheck(report.WriteSummary(os.Stdout, info.Authors))
	misc.ErrorCheck(report.WriteAll(os.Stdout, info.Identifications, info.Identify.Timings))
	log.Println("finished")
}
