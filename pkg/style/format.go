package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects between styled and plain output
type Mode int

const (
	// ModePlain writes text without escape sequences
	ModePlain Mode = iota
	// ModeTerminal styles output for an interactive terminal
	ModeTerminal
)

// DetectMode picks ModeTerminal when output is a color capable terminal
// and NO_COLOR is unset
func DetectMode(output *os.File) Mode {
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if output == nil {
		return ModePlain
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return ModePlain
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return ModePlain
	}
	return ModeTerminal
}

// Markup renders markup for the terminal or strips it for plain output
func (m Mode) Markup(text string) string {
	if m == ModeTerminal {
		return Render(text)
	}
	return Strip(text)
}
