package utils

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func forceColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func TestNewColorTheme(t *testing.T) {
	theme := NewColorTheme()
	if theme == nil {
		t.Fatal("NewColorTheme returned nil")
	}
	if theme.attrs == nil {
		t.Fatal("Theme attrs map is nil")
	}
}

func TestGetColor(t *testing.T) {
	forceColor(t)
	theme := NewColorTheme()

	testCases := []string{
		"red", "green", "yellow", "blue", "purple", "cyan", "white",
		"bold", "dim", "italic", "underline",
		"brightRed", "brightGreen", "brightYellow", "brightBlue", "brightPurple", "brightCyan",
	}

	for _, name := range testCases {
		result := theme.GetColor(name)
		if result == "" {
			t.Errorf("GetColor returned empty string for color: %s", name)
		}
		if !strings.HasPrefix(result, "\033[") {
			t.Errorf("GetColor returned invalid ANSI code for color: %s", name)
		}
	}

	if result := theme.GetColor("nonexistent"); result != theme.GetColor("reset") {
		t.Error("GetColor did not fall back to reset for an unknown color")
	}
}

func TestFormat(t *testing.T) {
	forceColor(t)
	theme := NewColorTheme()
	text := "test"

	formatted := theme.Format(text, "bold")
	if !strings.Contains(formatted, text) {
		t.Error("Formatted text does not contain original text")
	}
	if !strings.HasPrefix(formatted, theme.GetColor("bold")) {
		t.Error("Formatted text does not start with style color")
	}
}

func TestFormatUnknownStyleReturnsTextUnchanged(t *testing.T) {
	theme := NewColorTheme()
	if got := theme.Format("plain", "not-a-style"); got != "plain" {
		t.Errorf("got %q, want unchanged text", got)
	}
}

func TestDefaultTheme(t *testing.T) {
	if DefaultTheme == nil {
		t.Fatal("DefaultTheme is nil")
	}
	text := "test"
	formatted := DefaultTheme.Format(text, "bold")
	if !strings.Contains(formatted, text) {
		t.Error("DefaultTheme.Format did not work correctly")
	}
}
