package cli

// Menu implements MenuInterface for handling the main application flow
type Menu struct {
	display   DisplayHandler
	input     UserInputHandler
	factory   ProcessorFactory
	benchmark *BenchmarkRunner
	options   []MenuOption
}

// NewMenu creates a new menu instance
func NewMenu(display DisplayHandler, input UserInputHandler, factory ProcessorFactory) *Menu {
	return &Menu{
		display:   display,
		input:     input,
		factory:   factory,
		benchmark: NewBenchmarkRunner(display, input),
		options:   GetMenuOptions(),
	}
}

// Run executes the main menu loop
func (m *Menu) Run() error {
	m.display.ShowWelcome()

	for {
		m.display.ShowMenu(m.options)

		choice, err := m.input.GetChoice(len(m.options))
		if err != nil {
			m.display.ShowError(err)
			continue
		}

		if choice == OptionExit {
			m.display.ShowGoodbye()
			return nil
		}

		if choice == OptionBenchmark {
			if err := m.runBenchmark(); err != nil {
				m.display.ShowError(err)
			}
			continue
		}

		if err := m.processChoice(choice); err != nil {
			m.display.ShowError(err)
		}
	}
}

func (m *Menu) runBenchmark() error {
	result, steps, err := m.benchmark.RunCipherBenchmark()
	if err != nil {
		return err
	}
	m.display.ShowResult(result, steps)
	return nil
}

// processChoice handles the user's menu choice
func (m *Menu) processChoice(choice int) error {
	processor, err := m.factory.CreateProcessor(choice)
	if err != nil {
		return err
	}

	var opt MenuOption
	for _, o := range m.options {
		if o.ID == choice {
			opt = o
		}
	}

	m.display.ShowOperationPrompt()
	operation, err := m.input.GetOperation()
	if err != nil {
		return err
	}

	m.display.ShowKeyPrompt(opt.KeyHint)
	rawKey, err := m.input.GetKey(opt.KeyHint)
	if err != nil {
		return err
	}

	m.display.ShowMessage("Enter the text to process: ")
	text, err := m.input.GetText()
	if err != nil {
		return err
	}

	m.display.ShowProcessingMessage(text)

	result, steps, err := processor.Process(operation, text, rawKey)
	if err != nil {
		return err
	}

	m.display.ShowResult(result, steps)
	return nil
}
