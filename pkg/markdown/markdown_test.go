package markdown_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/markdown"
	"github.com/arthur-debert/linkkeeper/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SingleCategorizedLink(t *testing.T) {
	out := markdown.Render([]types.Link{types.NewLink("https://go.dev", "Go")})

	assert.Equal(t, "## Go\n\n[https://go.dev](https://go.dev)\n", out)
	assert.Equal(t, 1, strings.Count(out, "## Go"))
	assert.Equal(t, 1, strings.Count(out, "[https://go.dev](https://go.dev)"))
}

func TestRender_SameCategoryMerges(t *testing.T) {
	out := markdown.Render([]types.Link{
		types.NewLink("https://go.dev", "Go"),
		types.NewLink("https://pkg.go.dev", "Go"),
	})

	assert.Equal(t, 1, strings.Count(out, "## Go"))
	assert.Equal(t,
		"## Go\n\n[https://go.dev](https://go.dev)\n\n[https://pkg.go.dev](https://pkg.go.dev)\n",
		out)
}

func TestRender_UncategorizedFirstThenFirstSeenOrder(t *testing.T) {
	links := []types.Link{
		types.NewLink("https://b.example", "B"),
		types.NewLink("https://a.example", "A"),
		types.NewLink("https://plain.example", ""),
		types.NewLink("https://b2.example", "B"),
	}

	out := markdown.Render(links)

	want := strings.Join([]string{
		"[https://plain.example](https://plain.example)",
		"## B",
		"[https://b.example](https://b.example)",
		"[https://b2.example](https://b2.example)",
		"## A",
		"[https://a.example](https://a.example)",
	}, "\n\n") + "\n"
	assert.Equal(t, want, out)

	for i := 0; i < 10; i++ {
		assert.Equal(t, out, markdown.Render(links), "render must be deterministic")
	}
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", markdown.Render(nil))
}

func TestParse(t *testing.T) {
	src := `[https://plain.example](https://plain.example)

## Go

[https://go.dev](https://go.dev)

Some prose with an inline [link](https://pkg.go.dev) in it.

## Rust
[https://rust-lang.org](https://rust-lang.org)

- [listed](https://crates.io)
`

	links, err := markdown.Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, []types.Link{
		types.NewLink("https://plain.example", ""),
		types.NewLink("https://go.dev", "Go"),
		types.NewLink("https://pkg.go.dev", "Go"),
		types.NewLink("https://rust-lang.org", "Rust"),
		types.NewLink("https://crates.io", "Rust"),
	}, links)
}

func TestParse_AutoLink(t *testing.T) {
	links, err := markdown.Parse([]byte("## Tools\n\n<https://example.com/tool>\n"))
	require.NoError(t, err)
	assert.Equal(t, []types.Link{types.NewLink("https://example.com/tool", "Tools")}, links)
}

func TestParse_Empty(t *testing.T) {
	links, err := markdown.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, links)

	links, err = markdown.Parse([]byte("# Just a title\n\nNo links here.\n"))
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := markdown.Parse([]byte{0xff, 0xfe, '#'})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkdownParse))
}

func mustParse(t *testing.T, src string) []types.Link {
	t.Helper()
	links, err := markdown.Parse([]byte(src))
	require.NoError(t, err)
	return links
}

func TestRoundTrip_SingleLink(t *testing.T) {
	link := types.NewLink("https://go.dev/doc", "Docs")

	parsed := mustParse(t, markdown.Render([]types.Link{link}))

	require.Len(t, parsed, 1)
	assert.Equal(t, link, parsed[0])
}

func TestRoundTrip_ManyCategories(t *testing.T) {
	links := []types.Link{
		types.NewLink("https://plain.example", ""),
		types.NewLink("https://b.example", "B"),
		types.NewLink("https://b2.example", "B"),
		types.NewLink("https://a.example", "A"),
	}

	parsed := mustParse(t, markdown.Render(links))
	assert.Equal(t, links, parsed)
}

func TestRoundTrip_AppendKeepsExisting(t *testing.T) {
	existing := markdown.Render([]types.Link{
		types.NewLink("https://go.dev", "Go"),
	})

	links := append(mustParse(t, existing), types.NewLink("https://pkg.go.dev", "Go"))
	out := markdown.Render(links)

	assert.Equal(t, 1, strings.Count(out, "## Go"))
	assert.Len(t, mustParse(t, out), 2)
}

func TestFormatLink(t *testing.T) {
	assert.Equal(t, "[https://go.dev](https://go.dev)", markdown.FormatLink("https://go.dev"))
	assert.Equal(t,
		"[https://en.wikipedia.org/wiki/Go_(language)](<https://en.wikipedia.org/wiki/Go_(language)>)",
		markdown.FormatLink("https://en.wikipedia.org/wiki/Go_(language)"))
}

func TestRoundTrip_Parentheses(t *testing.T) {
	link := types.NewLink("https://en.wikipedia.org/wiki/Go_(language)", "Wiki")
	parsed := mustParse(t, markdown.Render([]types.Link{link}))
	require.Len(t, parsed, 1)
	assert.Equal(t, link, parsed[0])
}

func TestGroupByCategory(t *testing.T) {
	groups := markdown.GroupByCategory([]types.Link{
		types.NewLink("https://1", "x"),
		types.NewLink("https://2", ""),
		types.NewLink("https://3", "y"),
		types.NewLink("https://4", "x"),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "", groups[0].Category)
	assert.Equal(t, "x", groups[1].Category)
	assert.Len(t, groups[1].Links, 2)
	assert.Equal(t, "y", groups[2].Category)
}

func TestRender_EscapesHeadingMarkup(t *testing.T) {
	tests := []struct {
		category string
		heading  string
	}{
		{"*fav*", `## \*fav\*`},
		{"Go #", `## Go \#`},
		{"`code`", "## \\`code\\`"},
		{"a <b> c", `## a \<b\> c`},
		{"snake_case", `## snake\_case`},
		{`back\slash`, `## back\\slash`},
		{"Go tools", "## Go tools"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			out := markdown.Render([]types.Link{types.NewLink("https://go.dev", tt.category)})
			assert.True(t, strings.HasPrefix(out, tt.heading+"\n"), out)

			parsed := mustParse(t, out)
			require.Len(t, parsed, 1)
			assert.Equal(t, tt.category, parsed[0].Category)
		})
	}
}

func TestParse_HandWrittenHeadingMarkup(t *testing.T) {
	links := mustParse(t, "## Go ##\n\n<https://go.dev>\n\n## \\*fav\\*\n\n<https://a.example>\n")
	require.Len(t, links, 2)
	assert.Equal(t, "Go", links[0].Category)
	assert.Equal(t, "*fav*", links[1].Category)
}
