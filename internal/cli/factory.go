package cli

import (
	"fmt"
	"strconv"

	"github.com/kriptolens/classiclens/internal/config"
	"github.com/kriptolens/classiclens/internal/dispatch"
	"github.com/kriptolens/classiclens/internal/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Operation names accepted from the user and passed through to dispatch.
const (
	OperationEncrypt = "encrypt"
	OperationDecrypt = "decrypt"
)

// MethodProcessorFactory builds a Processor bound to one of dispatch's
// cataloged methods, by menu choice.
type MethodProcessorFactory struct {
	options []MenuOption
	classic config.ClassicConfig
}

// NewMethodProcessorFactory creates a factory over the current method
// catalog, applying classic's configured Shift/RailFence defaults
// when the user leaves those methods' keys blank.
func NewMethodProcessorFactory(classic config.ClassicConfig) *MethodProcessorFactory {
	return &MethodProcessorFactory{options: GetMenuOptions(), classic: classic}
}

// CreateProcessor resolves a 1-based menu choice to the Processor for
// that method. Exit is never a valid choice here; the Menu handles it
// before reaching the factory.
func (f *MethodProcessorFactory) CreateProcessor(choice int) (Processor, error) {
	for _, opt := range f.options {
		if opt.ID == choice && opt.MethodID != "" {
			return &methodProcessor{option: opt, classic: f.classic}, nil
		}
	}
	return nil, fmt.Errorf("invalid choice: %d", choice)
}

// methodProcessor adapts one catalog method to the Processor interface,
// narrating the call through a Visualizer.
type methodProcessor struct {
	option  MenuOption
	classic config.ClassicConfig
}

// defaultKeyFor supplies the configured CLI-convenience default for
// shift and rail_fence when the user left the key blank, so the
// config file's defaultShift/defaultRailFence values are something
// more than decorative. dispatch itself stays pure: this substitution
// happens before the raw key ever reaches dispatch.Encrypt/Decrypt.
func (p *methodProcessor) defaultKeyFor(rawKey string) string {
	if rawKey != "" {
		return rawKey
	}
	switch p.option.MethodID {
	case "shift":
		return strconv.Itoa(p.classic.DefaultShift)
	case "rail_fence":
		return strconv.Itoa(p.classic.DefaultRailFence)
	default:
		return rawKey
	}
}

func (p *methodProcessor) Process(operation, text, rawKey string) (string, []string, error) {
	rawKey = p.defaultKeyFor(rawKey)

	v := utils.NewVisualizer()
	v.AddStep(fmt.Sprintf("How %s works: %s", p.option.Name, p.option.Description))
	v.AddTextStep("Method", p.option.Name)
	v.AddTextStep("Operation", cases.Title(language.English).String(operation))
	v.AddTextStep("Input", text)
	if rawKey != "" {
		v.AddTextStep("Key", rawKey)
	} else {
		v.AddNote("no key supplied, using the method's default or keyless behavior")
	}
	v.AddArrow()

	var (
		result string
		err    error
	)
	switch operation {
	case OperationEncrypt:
		result, err = dispatch.Encrypt(p.option.MethodID, text, rawKey)
	case OperationDecrypt:
		result, err = dispatch.Decrypt(p.option.MethodID, text, rawKey)
	default:
		return "", nil, fmt.Errorf("unknown operation: %s", operation)
	}
	if err != nil {
		return "", nil, err
	}

	v.AddTextStep("Output", result)
	v.AddNote("classical ciphers are pedagogical; they offer no cryptographic security")

	return result, v.GetSteps(), nil
}
