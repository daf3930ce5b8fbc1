// Package pipeline contains the processes that train the author models and identify unknown documents
//
// The streaming pattern follows the Gopher Academy article by S. Lampa - Patterns for composable concurrent
// pipelines in Go (https://blog.gopheracademy.com/advent-2015/composable-pipelines-improvements/)
package pipeline

import "time"

// BUFFERSIZE is the size of the buffer used by the pipeline channels
const BUFFERSIZE int = 64

// process is the interface used by pipeline
type process interface {
	Run()
}

// Pipeline is the base type, which takes any types that satisfy the process interface
type Pipeline struct {
	processes []process
	elapsed   time.Duration
}

// NewPipeline is the pipeline constructor
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddProcess is a method to add a single process to the pipeline
func (Pipeline *Pipeline) AddProcess(proc process) {
	Pipeline.processes = append(Pipeline.processes, proc)
}

// AddProcesses is a method to add multiple processes to the pipeline, in the order the data flows through them
func (Pipeline *Pipeline) AddProcesses(procs ...process) {
	for _, proc := range procs {
		Pipeline.AddProcess(proc)
	}
}

// Run is a method that starts the pipeline and blocks until the last process returns
//
// Every process but the last runs in its own goroutine. The last one runs in the foreground, so it
// must be the process that drains the final channel.
func (Pipeline *Pipeline) Run() {
	start := time.Now()
	last := len(Pipeline.processes) - 1
	for i, proc := range Pipeline.processes {
		if i == last {
			proc.Run()
			break
		}
		go proc.Run()
	}
	Pipeline.elapsed = time.Since(start)
}

// GetNumProcesses is a method to return the number of processes registered in a pipeline
func (Pipeline *Pipeline) GetNumProcesses() int {
	return len(Pipeline.processes)
}

// GetElapsed is a method to return how long the last call to Run took
func (Pipeline *Pipeline) GetElapsed() time.Duration {
	return Pipeline.elapsed
}
