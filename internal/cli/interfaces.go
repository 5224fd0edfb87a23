package cli

// MenuInterface defines the contract for menu operations
type MenuInterface interface {
	Run() error
}

// ProcessorFactory defines the contract for creating method processors
type ProcessorFactory interface {
	CreateProcessor(choice int) (Processor, error)
}

// Processor runs one cipher method's encrypt/decrypt operation and
// reports the steps it took, for display.
type Processor interface {
	Process(operation, text, rawKey string) (result string, steps []string, err error)
}

// UserInputHandler defines the contract for handling user input
type UserInputHandler interface {
	GetChoice(max int) (int, error)
	GetText() (string, error)
	GetKey(prompt string) (string, error)
	GetOperation() (string, error)
}

// DisplayHandler defines the contract for displaying output
type DisplayHandler interface {
	ShowMenu(options []MenuOption)
	ShowResult(result string, steps []string)
	ShowError(err error)
	ShowWelcome()
	ShowGoodbye()
	ShowMessage(message string)
	ShowProcessingMessage(message string)
	ShowOperationPrompt()
	ShowKeyPrompt(hint string)
}
