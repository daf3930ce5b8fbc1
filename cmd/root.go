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
	"runtime"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/will-rowe/quill/src/misc"
	"github.com/will-rowe/quill/src/pipeline"
	"github.com/will-rowe/quill/src/version"
)

// the persistent command line arguments
var (
	proc       *int    // number of processors to use
	logFile    *string // name of the log file
	profiling  *bool   // create profile for go pprof
	configFile *string // TOML file with model settings
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Identify the author of a text using Markov models",
	Long: `quill trains an order-N Markov model on the works of each candidate author
and ranks the authors of unknown texts by smoothed log-likelihood.`,
}

// Execute adds all child commands to the root command sets flags appropriately
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init the persistent command line arguments
func init() {
	proc = RootCmd.PersistentFlags().IntP("processors", "p", runtime.NumCPU(), "number of processors to use")
	logFile = RootCmd.PersistentFlags().String("log", "", "filename for log file, default = STDOUT")
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile quill using the go tool pprof")
	configFile = RootCmd.PersistentFlags().String("config", "", "TOML file with default settings (order, smoothing, proc, extensions)")
}

// modelFlags are the model settings shared by the sub commands
type modelFlags struct {
	order      *int
	smoothing  *float64
	extensions *[]string
}

// addModelFlags registers the model settings on a sub command
func addModelFlags(cmd *cobra.Command) *modelFlags {
	defaults := pipeline.DefaultConfig()
	return &modelFlags{
		order:      cmd.Flags().IntP("order", "n", defaults.Order, "order of each Markov model (number of tokens in a context)"),
		smoothing:  cmd.Flags().Float64P("smoothing", "s", defaults.Smoothing, "Laplace smoothing constant added to each count"),
		extensions: cmd.Flags().StringSliceP("extensions", "e", nil, "only read files with these extensions (default = all files)"),
	}
}

// startCommand sets up profiling and logging, the returned function must be called when the command finishes
func startCommand(subcommand string) func() {
	var stoppers []func()
	if *profiling {
		stoppers = append(stoppers, profile.Start(profile.ProfilePath("./")).Stop)
	}
	if *logFile != "" {
		logFH := misc.StartLogging(*logFile)
		log.SetOutput(logFH)
		stoppers = append(stoppers, func() { logFH.Close() })
	} else {
		log.SetOutput(os.Stdout)
	}
	log.Printf("i am quill (version %s)", version.VERSION)
	log.Printf("starting the %s subcommand", subcommand)
	return func() {
		for i := len(stoppers) - 1; i >= 0; i-- {
			stoppers[i]()
		}
	}
}

// buildConfig layers the config file and then any flags the user set over the defaults
func buildConfig(flags *pflag.FlagSet, model *modelFlags) (pipeline.Config, error) {
	config := pipeline.DefaultConfig()
	if *configFile != "" {
		var err error
		if config, err = pipeline.LoadConfig(*configFile); err != nil {
			return config, err
		}
		log.Printf("\tloaded settings from: %v", *configFile)
	}
	if flags.Changed("processors") || *configFile == "" {
		config.Proc = *proc
	}
	if model != nil {
		if flags.Changed("order") {
			config.Order = *model.order
		}
		if flags.Changed("smoothing") {
			config.Smoothing = *model.smoothing
		}
		if flags.Changed("extensions") {
			config.Extensions = *model.extensions
		}
	}

	// set number of processors to use
	if config.Proc <= 0 || config.Proc > runtime.NumCPU() {
		config.Proc = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(config.Proc)
	return config, config.Validate()
}
