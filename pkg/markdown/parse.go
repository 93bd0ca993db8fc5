package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/types"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parse extracts the links of a Markdown index in document order.
// Each link takes the text of the closest heading above it as its
// category; links above the first heading are uncategorized.
func Parse(src []byte) ([]types.Link, error) {
	if !utf8.Valid(src) {
		return nil, errors.New(errors.ErrMarkdownParse, "index is not valid UTF-8")
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		links    []types.Link
		category string
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			category = headingText(node, src)
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			if inParagraph(node) && len(node.Destination) > 0 {
				links = append(links, types.NewLink(string(node.Destination), category))
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			if inParagraph(node) {
				links = append(links, types.NewLink(string(node.URL(src)), category))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return links, nil
}

// inParagraph reports whether n sits inside a paragraph or a tight list
// item's text block
func inParagraph(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			return true
		}
	}
	return false
}

// headingText returns the raw heading line with backslash escapes
// resolved, so markup characters in a category survive a round trip
func headingText(n *ast.Heading, src []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(segment.Value(src))))
	}
	raw := strings.TrimSpace(strings.Join(parts, " "))
	return string(util.UnescapePunctuations([]byte(raw)))
}
