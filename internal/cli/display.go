package cli

import (
	"fmt"
	"os"

	"github.com/kriptolens/classiclens/internal/utils"
	"github.com/olekukonko/tablewriter"
)

// ConsoleDisplay implements DisplayHandler for console output
type ConsoleDisplay struct {
	theme utils.Theme
}

// NewConsoleDisplay creates a new console display handler
func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{
		theme: utils.DefaultTheme,
	}
}

// ShowMenu displays the main menu, built from the current method catalog.
func (d *ConsoleDisplay) ShowMenu(options []MenuOption) {
	fmt.Printf("\n%s\n", d.theme.Format("ClassicLens - Choose a cipher:", "bold cyan"))
	for _, opt := range options {
		fmt.Printf("%s\n", d.theme.Format(fmt.Sprintf("%d. %s", opt.ID, opt.Name), "yellow"))
	}
	fmt.Printf("\n%s", d.theme.Format(fmt.Sprintf("Enter your choice (1-%d): ", options[len(options)-1].ID), "green"))
}

// ShowResult displays the processing result and steps
func (d *ConsoleDisplay) ShowResult(result string, steps []string) {
	fmt.Printf("\n%s\n", d.theme.Format("Result:", "bold brightGreen"))
	fmt.Printf("%s\n", d.theme.Format(result, "brightGreen"))

	fmt.Printf("\n%s\n", d.theme.Format("Processing Steps:", "bold brightCyan"))
	for _, step := range steps {
		fmt.Printf("%s\n", step)
	}
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Step"})
	for i, step := range steps {
		// nolint:errcheck // Table operations are safe to ignore errors
		table.Append([]string{fmt.Sprintf("%d", i+1), step})
	}
	// nolint:errcheck // Table render is safe to ignore errors
	table.Render()
}

// ShowError displays an error message
func (d *ConsoleDisplay) ShowError(err error) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Error:", "bold brightRed"), d.theme.Format(err.Error(), "red"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}

// ShowWelcome displays the welcome message
func (d *ConsoleDisplay) ShowWelcome() {
	fmt.Printf("%s\n", d.theme.Format("Welcome to ClassicLens!", "bold brightCyan"))
	fmt.Printf("%s\n", d.theme.Format("Version: "+AppVersion, "dim white"))
	fmt.Printf("%s\n", d.theme.Format("This program demonstrates classical pen-and-paper ciphers.", "dim white"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}

// ShowGoodbye displays the goodbye message
func (d *ConsoleDisplay) ShowGoodbye() {
	fmt.Printf("\n%s\n", d.theme.Format("Thank you for using ClassicLens!", "brightCyan bold"))
	fmt.Printf("%s\n", d.theme.Format("Goodbye!", "brightCyan bold"))
}

// ShowMessage displays a prompt for user input
func (d *ConsoleDisplay) ShowMessage(message string) {
	fmt.Printf("\n%s", d.theme.Format(message, "brightGreen bold"))
}

// ShowProcessingMessage displays the message being processed
func (d *ConsoleDisplay) ShowProcessingMessage(message string) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Processing message:", "bold brightPurple"), d.theme.Format(message, "purple"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}

// ShowOperationPrompt displays the operation selection prompt
func (d *ConsoleDisplay) ShowOperationPrompt() {
	fmt.Printf("\n%s\n", d.theme.Format("Choose operation:", "bold brightCyan"))
	fmt.Printf("%s\n", d.theme.Format("1. Encrypt", "brightYellow bold"))
	fmt.Printf("%s\n", d.theme.Format("2. Decrypt", "brightYellow bold"))
	fmt.Printf("\n%s", d.theme.Format("Enter your choice (1-2): ", "brightGreen bold"))
}

// ShowKeyPrompt displays the prompt for the method's key, if any.
func (d *ConsoleDisplay) ShowKeyPrompt(hint string) {
	if hint == "" || hint == "(no key needed)" {
		return
	}
	fmt.Printf("\n%s", d.theme.Format(fmt.Sprintf("Enter the key (%s): ", hint), "brightGreen bold"))
}
