package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and the topic file extension
	Render(content string, format string) string
}

// PlainRenderer returns content as is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkdownRenderer applies Func to .md topics and leaves others alone
type MarkdownRenderer struct {
	Func func(content string) string
}

// Render implements Renderer
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" || r.Func == nil {
		return content
	}
	return r.Func(content)
}
