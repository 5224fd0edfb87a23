package utils

import (
	"strings"

	"github.com/fatih/color"
)

// Theme defines the interface for color themes
type Theme interface {
	// GetColor returns the ANSI escape prefix for the given color name
	GetColor(name string) string
	// Format formats text with the given style (space-separated color/attribute names)
	Format(text string, style string) string
}

// ColorTheme implements Theme on top of fatih/color's attribute set,
// resolving a style's space-separated tokens ("bold brightCyan") into
// a single combined color.Color.
type ColorTheme struct {
	attrs map[string]color.Attribute
}

// NewColorTheme creates a new color theme with default color/attribute names.
func NewColorTheme() *ColorTheme {
	return &ColorTheme{
		attrs: map[string]color.Attribute{
			"reset":        color.Reset,
			"red":          color.FgRed,
			"green":        color.FgGreen,
			"yellow":       color.FgYellow,
			"blue":         color.FgBlue,
			"purple":       color.FgMagenta,
			"cyan":         color.FgCyan,
			"white":        color.FgWhite,
			"bold":         color.Bold,
			"dim":          color.Faint,
			"italic":       color.Italic,
			"underline":    color.Underline,
			"brightRed":    color.FgHiRed,
			"brightGreen":  color.FgHiGreen,
			"brightYellow": color.FgHiYellow,
			"brightBlue":   color.FgHiBlue,
			"brightPurple": color.FgHiMagenta,
			"brightCyan":   color.FgHiCyan,
		},
	}
}

// GetColor returns the ANSI escape prefix fatih/color emits for a
// single attribute name, or the reset sequence if name is unknown.
func (t *ColorTheme) GetColor(name string) string {
	attr, ok := t.attrs[name]
	if !ok {
		return t.ansiPrefix(color.Reset)
	}
	return t.ansiPrefix(attr)
}

// Format applies every attribute named in style (space-separated) to
// text in one combined escape sequence.
func (t *ColorTheme) Format(text string, style string) string {
	var attrs []color.Attribute
	for _, name := range strings.Fields(style) {
		if attr, ok := t.attrs[name]; ok {
			attrs = append(attrs, attr)
		}
	}
	if len(attrs) == 0 {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

// ansiPrefix extracts the escape prefix fatih/color wraps around
// Sprint output for the given attributes, discarding the sentinel
// payload and trailing reset.
func (t *ColorTheme) ansiPrefix(attrs ...color.Attribute) string {
	const sentinel = "\x00"
	wrapped := color.New(attrs...).Sprint(sentinel)
	if idx := strings.Index(wrapped, sentinel); idx >= 0 {
		return wrapped[:idx]
	}
	return wrapped
}

// DefaultTheme is the default color theme instance.
var DefaultTheme Theme = NewColorTheme()
