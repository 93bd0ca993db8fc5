// Package export renders link collections for the list command.
package export

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/markdown"
	"github.com/arthur-debert/linkkeeper/pkg/rawlog"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// Format is an output format for a link listing
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXBEL     Format = "xbel"
)

var formats = map[string]Format{
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
	"xbel":     FormatXBEL,
	"xml":      FormatXBEL,
}

// Formats returns the canonical format names
func Formats() []string {
	return []string{string(FormatMarkdown), string(FormatJSON), string(FormatYAML), string(FormatXBEL)}
}

// ParseFormat resolves a format name or alias
func ParseFormat(name string) (Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q, expected one of %s", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Filter keeps the links in category. An empty category keeps everything.
func Filter(links []types.Link, category string) []types.Link {
	category = strings.TrimSpace(category)
	if category == "" {
		return links
	}
	var out []types.Link
	for _, link := range links {
		if strings.EqualFold(link.Category, category) {
			out = append(out, link)
		}
	}
	return out
}

// Categories returns the distinct categories of links, sorted
func Categories(links []types.Link) []string {
	seen := make(map[string]bool)
	var out []string
	for _, link := range links {
		if link.HasCategory() && !seen[link.Category] {
			seen[link.Category] = true
			out = append(out, link.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Render writes links in the given format
func Render(links []types.Link, f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return []byte(markdown.Render(links)), nil
	case FormatJSON:
		data, err := rawlog.Encode(links)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode links as JSON")
		}
		return data, nil
	case FormatYAML:
		return renderYAML(links)
	case FormatXBEL:
		return renderXBEL(links)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", f)
	}
}

type yamlLink struct {
	URL      string `yaml:"url"`
	Category string `yaml:"category,omitempty"`
}

func renderYAML(links []types.Link) ([]byte, error) {
	out := make([]yamlLink, 0, len(links))
	for _, link := range links {
		out = append(out, yamlLink{URL: link.URL, Category: link.Category})
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode links as YAML")
	}
	return data, nil
}

const xbelDoctype = `DOCTYPE xbel PUBLIC "+//IDN python.org//DTD XML Bookmark Exchange Language 1.0//EN//XML" "http://pyxml.sourceforge.net/topics/dtds/xbel.dtd"`

// renderXBEL writes an XBEL bookmark file: one folder per category,
// uncategorized bookmarks at the top level.
func renderXBEL(links []types.Link) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(xbelDoctype)

	root := doc.CreateElement("xbel")
	root.CreateAttr("version", "1.0")

	for _, group := range markdown.GroupByCategory(links) {
		parent := root
		if group.Category != "" {
			parent = root.CreateElement("folder")
			parent.CreateElement("title").SetText(group.Category)
		}
		for _, link := range group.Links {
			bookmark := parent.CreateElement("bookmark")
			bookmark.CreateAttr("href", link.URL)
			bookmark.CreateElement("title").SetText(link.URL)
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode links as XBEL")
	}
	return data, nil
}
