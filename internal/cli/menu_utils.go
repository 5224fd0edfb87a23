package cli

import (
	"fmt"
	"strings"
	"time"
)

// MenuUtils holds small helpers shared between the menu and the
// benchmark command: a loading spinner and benchmark input prompts.
type MenuUtils struct {
	display DisplayHandler
	input   UserInputHandler
}

// NewMenuUtils creates a new menu utilities instance
func NewMenuUtils(display DisplayHandler, input UserInputHandler) *MenuUtils {
	return &MenuUtils{
		display: display,
		input:   input,
	}
}

// ShowLoadingAnimation displays a loading animation until done fires.
func (u *MenuUtils) ShowLoadingAnimation(done chan bool) {
	loadingChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	i := 0
	for {
		select {
		case <-done:
			fmt.Print("\r\033[K") // Clear the line
			return
		default:
			fmt.Printf("\r%s Running benchmark... %s", loadingChars[i], strings.Repeat(".", (i%5)+1))
			i = (i + 1) % len(loadingChars)
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// GetBenchmarkText gets text input for benchmarking
func (u *MenuUtils) GetBenchmarkText(defaultText string) string {
	fmt.Printf("\nEnter sample text for benchmarking (default: '%s'): ", defaultText)
	return GetTextInput(defaultText)
}

// GetBenchmarkIterations gets the number of iterations for benchmarking
func (u *MenuUtils) GetBenchmarkIterations(defaultIterations, min, max int) int {
	iterations := GetIntInput(fmt.Sprintf("\nEnter number of iterations (default: %d): ", defaultIterations), min, max)
	if iterations == 0 {
		return defaultIterations
	}
	return iterations
}
