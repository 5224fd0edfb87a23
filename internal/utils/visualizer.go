package utils

import (
	"fmt"
	"strings"
)

// Visualizer helps display a cipher's step-by-step transformation in
// a themed, human-readable log.
type Visualizer struct {
	steps []string
	theme Theme
}

// NewVisualizer creates a new visualizer instance using DefaultTheme.
func NewVisualizer() *Visualizer {
	return &Visualizer{
		steps: make([]string, 0),
		theme: DefaultTheme,
	}
}

// AddStep adds a step to the visualization, picking a style by the
// step's shape.
func (v *Visualizer) AddStep(step string) {
	switch {
	case strings.HasPrefix(step, "Note:"):
		v.steps = append(v.steps, v.theme.Format(step, "dim"))
	case strings.HasPrefix(step, "How") || strings.HasPrefix(step, "Security"):
		v.steps = append(v.steps, "\n"+v.theme.Format(step, "bold"))
	case strings.Contains(step, "->"):
		v.steps = append(v.steps, v.theme.Format(step, "brightYellow"))
	case strings.HasPrefix(step, "Character"):
		v.steps = append(v.steps, v.theme.Format(step, "brightPurple"))
	case strings.HasPrefix(step, "ASCII") || strings.HasPrefix(step, "Binary"):
		v.steps = append(v.steps, v.theme.Format(step, "brightBlue"))
	default:
		v.steps = append(v.steps, step)
	}
}

// AddBinaryStep adds a step showing a byte slice's binary representation.
func (v *Visualizer) AddBinaryStep(label string, data []byte) {
	binary := make([]string, len(data))
	for i, b := range data {
		binary[i] = v.theme.Format(fmt.Sprintf("%08b", b), "brightYellow")
	}
	v.steps = append(v.steps, fmt.Sprintf("%s: %s", v.theme.Format(label, "bold brightBlue"), strings.Join(binary, " ")))
}

// AddHexStep adds a step showing a byte slice's hex representation.
func (v *Visualizer) AddHexStep(label string, data []byte) {
	hex := make([]string, len(data))
	for i, b := range data {
		hex[i] = v.theme.Format(fmt.Sprintf("%02x", b), "brightGreen")
	}
	v.steps = append(v.steps, fmt.Sprintf("%s: %s", v.theme.Format(label, "bold brightBlue"), strings.Join(hex, " ")))
}

// AddTextStep adds a step showing a labeled text value.
func (v *Visualizer) AddTextStep(label string, text string) {
	v.steps = append(v.steps, fmt.Sprintf("%s: %s", v.theme.Format(label, "bold brightPurple"), v.theme.Format(text, "purple")))
}

// AddArrow adds a visual arrow to show a transformation step.
func (v *Visualizer) AddArrow() {
	v.steps = append(v.steps, v.theme.Format("    ↓", "brightYellow bold"))
}

// AddSeparator adds a visual separator.
func (v *Visualizer) AddSeparator() {
	v.steps = append(v.steps, v.theme.Format(strings.Repeat("-", 40), "dim blue"))
}

// AddNote adds an explanatory note.
func (v *Visualizer) AddNote(note string) {
	v.steps = append(v.steps, fmt.Sprintf("%s %s", v.theme.Format("Note:", "dim yellow"), note))
}

// GetSteps returns all visualization steps.
func (v *Visualizer) GetSteps() []string {
	return v.steps
}

// Display prints the visualization to the console.
func (v *Visualizer) Display() {
	fmt.Printf("\n%s\n", v.theme.Format("Encryption Process Visualization:", "bold brightCyan"))
	fmt.Printf("%s\n", v.theme.Format(strings.Repeat("=", 33), "dim blue"))
	for _, step := range v.steps {
		fmt.Println(step)
	}
	fmt.Printf("%s\n", v.theme.Format(strings.Repeat("=", 33), "dim blue"))
}
