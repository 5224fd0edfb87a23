package cli

import "github.com/kriptolens/classiclens/internal/dispatch"

// AppVersion is the current version of the application
const AppVersion = "v1.0.0"

// OptionBenchmark is the menu choice that runs the cipher benchmark.
// It sits one past the last cataloged method.
var OptionBenchmark = len(dispatch.Methods()) + 1

// OptionExit is the menu choice that ends the program. It always
// sits one past OptionBenchmark.
var OptionExit = len(dispatch.Methods()) + 2

// MenuOption represents one selectable menu entry.
type MenuOption struct {
	ID          int
	Name        string
	Description string
	MethodID    string // empty for the Benchmark and Exit options
	KeyHint     string
}

// GetMenuOptions returns the eleven cipher methods, in dispatch's fixed
// catalog order, followed by Benchmark and Exit.
func GetMenuOptions() []MenuOption {
	methods := dispatch.Methods()
	options := make([]MenuOption, 0, len(methods)+1)
	for i, m := range methods {
		options = append(options, MenuOption{
			ID:          i + 1,
			Name:        m.DisplayName,
			Description: methodDescription(m.ID),
			MethodID:    m.ID,
			KeyHint:     keyHint(m),
		})
	}
	options = append(options, MenuOption{ID: OptionBenchmark, Name: "Benchmark", Description: "Time every method's Encrypt call"})
	options = append(options, MenuOption{ID: OptionExit, Name: "Exit", Description: "Exit the program"})
	return options
}

func methodDescription(id string) string {
	switch id {
	case "shift":
		return "Shift every letter by a fixed amount"
	case "caesar":
		return "Shift cipher with a default key of 3"
	case "substitution":
		return "Monoalphabetic substitution via a keyed permutation"
	case "vigenere":
		return "Polyalphabetic shift driven by a repeating keyword"
	case "playfair":
		return "Digraph substitution over a 5x5 key square"
	case "rail_fence":
		return "Zigzag transposition across a fixed number of rails"
	case "route":
		return "Grid transposition read out along a chosen route"
	case "columnar_transposition":
		return "Columns reordered by a keyword's alphabetical rank"
	case "polybius":
		return "Coordinate cipher over a 5x5 square"
	case "pigpen":
		return "Keyless letter-to-symbol substitution"
	case "hill":
		return "Matrix multiplication over blocks of letters"
	default:
		return ""
	}
}

// keyHint derives the user-facing key prompt from the method's own
// catalog entry (requires_key + hint) rather than its key category,
// so e.g. route's "rows,cols,route" hint isn't mislabeled as a plain
// letter key just because it happens to share a string KeyCategory
// with Vigenère or Playfair.
func keyHint(m dispatch.Method) string {
	if !m.RequiresKey && m.Hint == "not used" {
		return "(no key needed)"
	}
	return m.Hint
}
