package style

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal with glamour. The input
// is returned unchanged if rendering fails. A width of zero keeps
// glamour's default wrapping.
func RenderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
