package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/kriptolens/classiclens/internal/utils"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outputCh := make(chan string)
	go func() {
		var buf strings.Builder
		io.Copy(&buf, r)
		outputCh <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	return <-outputCh
}

func TestConsoleDisplay(t *testing.T) {
	display := NewConsoleDisplay()
	options := GetMenuOptions()

	output := captureOutput(func() { display.ShowMenu(options) })
	if !strings.Contains(output, "ClassicLens") {
		t.Error("ShowMenu did not produce expected output")
	}
	if !strings.Contains(output, "Hill Cipher") {
		t.Error("ShowMenu did not list every cataloged method")
	}

	output = captureOutput(display.ShowWelcome)
	if !strings.Contains(output, "Welcome to ClassicLens") {
		t.Error("ShowWelcome did not produce expected output")
	}

	output = captureOutput(display.ShowGoodbye)
	if !strings.Contains(output, "Goodbye") {
		t.Error("ShowGoodbye did not produce expected output")
	}

	output = captureOutput(func() { display.ShowMessage("test message") })
	if !strings.Contains(output, "test message") {
		t.Error("ShowMessage did not produce expected output")
	}

	output = captureOutput(func() { display.ShowProcessingMessage("processing") })
	if !strings.Contains(output, "processing") {
		t.Error("ShowProcessingMessage did not produce expected output")
	}

	output = captureOutput(display.ShowOperationPrompt)
	if !strings.Contains(output, "Choose operation") {
		t.Error("ShowOperationPrompt did not produce expected output")
	}

	output = captureOutput(func() { display.ShowError(fmt.Errorf("test error")) })
	if !strings.Contains(output, "test error") {
		t.Error("ShowError did not produce expected output")
	}

	output = captureOutput(func() { display.ShowResult("test result", []string{"step1", "step2"}) })
	if !strings.Contains(output, "test result") || !strings.Contains(output, "step1") || !strings.Contains(output, "step2") {
		t.Error("ShowResult did not produce expected output")
	}

	output = captureOutput(func() { display.ShowKeyPrompt("an integer shift amount") })
	if !strings.Contains(output, "an integer shift amount") {
		t.Error("ShowKeyPrompt did not produce expected output")
	}

	output = captureOutput(func() { display.ShowKeyPrompt("(no key needed)") })
	if output != "" {
		t.Error("ShowKeyPrompt should stay silent when no key is needed")
	}
}

func TestDisplayTheme(t *testing.T) {
	display := NewConsoleDisplay()
	if display.theme != utils.DefaultTheme {
		t.Errorf("Expected default theme, got %v", display.theme)
	}
}
