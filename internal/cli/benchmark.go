package cli

import "github.com/kriptolens/classiclens/internal/benchmark"

// BenchmarkRunner drives the interactive cipher benchmark: it prompts
// for sample text and iteration count, then delegates the actual
// timing to internal/benchmark.
type BenchmarkRunner struct {
	display DisplayHandler
	input   UserInputHandler
	utils   *MenuUtils
}

// NewBenchmarkRunner creates a new benchmark runner
func NewBenchmarkRunner(display DisplayHandler, input UserInputHandler) *BenchmarkRunner {
	return &BenchmarkRunner{
		display: display,
		input:   input,
		utils:   NewMenuUtils(display, input),
	}
}

// RunCipherBenchmark prompts for sample text/iterations and times
// every cataloged cipher method.
func (b *BenchmarkRunner) RunCipherBenchmark() (string, []string, error) {
	text := b.utils.GetBenchmarkText("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG")
	iterations := b.utils.GetBenchmarkIterations(1000, 1, 1000000)

	done := make(chan bool)
	go b.utils.ShowLoadingAnimation(done)
	result, steps, err := benchmark.RunCipherBenchmark(text, iterations)
	done <- true

	return result, steps, err
}
