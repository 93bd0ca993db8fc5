package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkkeeper/pkg/keeper"
	"github.com/arthur-debert/linkkeeper/pkg/secrets"
	"github.com/arthur-debert/linkkeeper/pkg/style"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// initTemplateFormatting adds formatting functions to cobra templates
func initTemplateFormatting(mode style.Mode) {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": func(s string) string {
			if mode == style.ModeTerminal {
				return style.Bold(s)
			}
			return s
		},
		"upper": strings.ToUpper,
	})
}

func printLine(w io.Writer, mode style.Mode, format string, args ...interface{}) {
	fmt.Fprintln(w, mode.Markup(fmt.Sprintf(format, args...)))
}

// printAddResult writes one line per backend outcome
func printAddResult(w io.Writer, mode style.Mode, result *keeper.AddResult, rawLog string) {
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			printLine(w, mode, MsgFailedFormat, outcome.Backend, outcome.Err)
			continue
		}
		printLine(w, mode, MsgAddedFormat, result.Link.URL, outcome.Backend)
	}
	printLine(w, mode, MsgRecordedFormat, rawLog)
}

// configFields flattens a backend configuration into sorted key/value
// pairs with secrets masked
func configFields(backend types.Backend) ([][2]string, error) {
	data, err := gotoml.Marshal(backend.Config())
	if err != nil {
		return nil, err
	}
	var values map[string]interface{}
	if err := gotoml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	values = secrets.MaskFields(values)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([][2]string, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, [2]string{key, fmt.Sprint(values[key])})
	}
	return fields, nil
}

func printBackends(w io.Writer, mode style.Mode, backends []types.Backend) error {
	for _, backend := range backends {
		printLine(w, mode, "[backend]%s[/backend]", backend.Name())
		fields, err := configFields(backend)
		if err != nil {
			return err
		}
		for _, field := range fields {
			printLine(w, mode, "  %s: %s", field[0], field[1])
		}
	}
	return nil
}
