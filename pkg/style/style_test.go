package style

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[url]https://go.dev[/url]", "https://go.dev"},
		{"Added [url]https://go.dev[/url] to [backend]git[/backend]", "Added https://go.dev to git"},
		{"[bold][category]Go[/category][/bold]", "Go"},
		{"[unknown]kept[/unknown]", "[unknown]kept[/unknown]"},
		{"no markup", "no markup"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestRender_ReplacesKnownTags(t *testing.T) {
	out := Render("[success]done[/success]")
	assert.Contains(t, out, "done")
	assert.NotContains(t, out, "[success]")

	assert.Equal(t, "[nope]x[/nope]", Render("[nope]x[/nope]"))
}

func TestRenderTemplate(t *testing.T) {
	out := defaultParser.RenderTemplate("Added {{url}}", map[string]string{"url": "https://go.dev"})
	assert.Equal(t, "Added https://go.dev", out)
}

func TestModeMarkup_Plain(t *testing.T) {
	assert.Equal(t, "Added https://go.dev", ModePlain.Markup("Added [url]https://go.dev[/url]"))
}

func TestDetectMode(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ModePlain, DetectMode(os.Stdout))

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, ModePlain, DetectMode(nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()
	assert.Equal(t, ModePlain, DetectMode(f), "a regular file is not a terminal")
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("## Go\n\n[https://go.dev](https://go.dev)\n", 80)
	assert.Contains(t, out, "go.dev")
}
