package markdown

import (
	"strings"

	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// Group is the set of links sharing a category
type Group struct {
	// Category is empty for uncategorized links
	Category string
	Links    []types.Link
}

// GroupByCategory buckets links by category. The uncategorized group, if
// any, comes first; the others follow in the order their category first
// appears. Links keep their relative order inside a group.
func GroupByCategory(links []types.Link) []Group {
	var (
		groups        []Group
		uncategorized []types.Link
		index         = make(map[string]int)
	)

	for _, link := range links {
		if !link.HasCategory() {
			uncategorized = append(uncategorized, link)
			continue
		}
		i, ok := index[link.Category]
		if !ok {
			i = len(groups)
			index[link.Category] = i
			groups = append(groups, Group{Category: link.Category})
		}
		groups[i].Links = append(groups[i].Links, link)
	}

	if len(uncategorized) > 0 {
		groups = append([]Group{{Links: uncategorized}}, groups...)
	}
	return groups
}

// Render produces the Markdown index for links
func Render(links []types.Link) string {
	var blocks []string
	for _, group := range GroupByCategory(links) {
		if group.Category != "" {
			blocks = append(blocks, "## "+EscapeHeading(group.Category))
		}
		for _, link := range group.Links {
			blocks = append(blocks, FormatLink(link.URL))
		}
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

var headingEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`<`, `\<`, `>`, `\>`, `!`, `\!`, `&`, `\&`, `#`, `\#`, `~`, `\~`, `|`, `\|`,
)

// EscapeHeading backslash-escapes the characters Markdown would read as
// markup in heading text
func EscapeHeading(category string) string {
	return headingEscaper.Replace(category)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// FormatLink renders url as a Markdown link labelled with itself
func FormatLink(url string) string {
	dest := url
	if strings.ContainsAny(url, " ()<>") {
		dest = "<" + strings.NewReplacer("<", `\<`, ">", `\>`).Replace(url) + ">"
	}
	return "[" + labelEscaper.Replace(url) + "](" + dest + ")"
}
