package types

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	noWhitespace = regexp.MustCompile(`^\S+$`)
	singleLine   = regexp.MustCompile(`^[^\r\n]*$`)
)

// Link is a stored URL with an optional category.
// The zero Category means the link is uncategorized.
type Link struct {
	URL      string
	Category string
}

// NewLink builds a Link. A blank category is treated as absent.
func NewLink(url, category string) Link {
	return Link{
		URL:      strings.TrimSpace(url),
		Category: strings.TrimSpace(category),
	}
}

// HasCategory reports whether the link carries a category
func (l Link) HasCategory() bool {
	return l.Category != ""
}

// Validate checks the link has a usable URL and a single line category
func (l Link) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.URL, validation.Required, validation.Match(noWhitespace)),
		validation.Field(&l.Category, validation.Match(singleLine)),
	)
}

func (l Link) String() string {
	if l.HasCategory() {
		return l.URL + " (" + l.Category + ")"
	}
	return l.URL
}

// linkJSON is the raw log representation; a missing category is null
type linkJSON struct {
	URL      string  `json:"url"`
	Category *string `json:"category"`
}

// MarshalJSON implements json.Marshaler
func (l Link) MarshalJSON() ([]byte, error) {
	out := linkJSON{URL: l.URL}
	if l.HasCategory() {
		category := l.Category
		out.Category = &category
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (l *Link) UnmarshalJSON(data []byte) error {
	var in linkJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	category := ""
	if in.Category != nil {
		category = *in.Category
	}
	*l = NewLink(in.URL, category)
	return nil
}
