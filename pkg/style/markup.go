package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   make(map[string]lipgloss.Style),
		patterns: make(map[string]*regexp.Regexp),
	}
	p.AddStyle("title", TitleStyle)
	p.AddStyle("success", SuccessStyle)
	p.AddStyle("error", ErrorStyle)
	p.AddStyle("warning", WarningStyle)
	p.AddStyle("muted", MutedStyle)
	p.AddStyle("path", PathStyle)
	p.AddStyle("url", URLStyle)
	p.AddStyle("category", CategoryStyle)
	p.AddStyle("backend", BackendStyle)
	p.AddStyle("bold", lipgloss.NewStyle().Bold(true))
	return p
}

// AddStyle registers a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render replaces known tags with styled text. Unknown tags are left as is.
func (p *MarkupParser) Render(text string) string {
	return p.apply(text, func(tag, content string) string {
		return p.styles[tag].Render(content)
	})
}

// Strip removes known tags, keeping their content
func (p *MarkupParser) Strip(text string) string {
	return p.apply(text, func(_, content string) string {
		return content
	})
}

// apply rewrites tags until none are left, so nested tags resolve
func (p *MarkupParser) apply(text string, fn func(tag, content string) string) string {
	for {
		before := text
		for tag, pattern := range p.patterns {
			text = pattern.ReplaceAllStringFunc(text, func(match string) string {
				return fn(tag, pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
