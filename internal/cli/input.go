package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ConsoleInput implements UserInputHandler for console input
type ConsoleInput struct {
	scanner *bufio.Scanner
}

// NewConsoleInput creates a new console input handler
func NewConsoleInput() *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(os.Stdin),
	}
}

// GetChoice reads the menu choice, bounded to [1, max].
func (i *ConsoleInput) GetChoice(max int) (int, error) {
	i.scanner.Scan()
	choice, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("invalid input: please enter a number between 1 and %d", max)
	}
	if choice < 1 || choice > max {
		return 0, fmt.Errorf("invalid choice: please enter a number between 1 and %d", max)
	}
	return choice, nil
}

// GetText reads the plaintext/ciphertext to process. Unlike the key,
// this must not be empty.
func (i *ConsoleInput) GetText() (string, error) {
	i.scanner.Scan()
	text := i.scanner.Text()
	if text == "" {
		return "", fmt.Errorf("text cannot be empty")
	}
	return text, nil
}

// GetKey reads the method's key. An empty line is valid: the method
// either ignores the key (Pigpen) or falls back to a default
// (Caesar, Polybius).
func (i *ConsoleInput) GetKey(_ string) (string, error) {
	i.scanner.Scan()
	return i.scanner.Text(), nil
}

// GetOperation prompts separately isn't needed here: the prompt text
// is shown by DisplayHandler.ShowOperationPrompt before this is
// called; this only reads the choice.
func (i *ConsoleInput) GetOperation() (string, error) {
	i.scanner.Scan()
	choice, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
	if err != nil {
		return "", fmt.Errorf("invalid input: please enter a number between 1 and 2")
	}
	if choice < 1 || choice > 2 {
		return "", fmt.Errorf("invalid choice: please enter a number between 1 and 2")
	}
	if choice == 1 {
		return OperationEncrypt, nil
	}
	return OperationDecrypt, nil
}

// GetTextInput gets text input with a default value, for non-menu
// prompts such as the benchmark's sample-text selection.
func GetTextInput(defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

// GetIntInput gets an integer input within a range, for non-menu
// prompts such as the benchmark's iteration count.
func GetIntInput(prompt string, minValue, maxValue int) int {
	for {
		fmt.Print(prompt)
		input := GetTextInput("")
		if input == "" {
			return 0
		}

		value, err := strconv.Atoi(input)
		if err != nil || value < minValue || value > maxValue {
			fmt.Printf("Please enter a number between %d and %d\n", minValue, maxValue)
			continue
		}
		return value
	}
}
