package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkkeeper/pkg/export"
	"github.com/arthur-debert/linkkeeper/pkg/style"
)

func newListCmd(env *Env) *cobra.Command {
	var (
		format   string
		category string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			k, err := env.openKeeper()
			if err != nil {
				return err
			}
			links, err := k.Links()
			if err != nil {
				return err
			}
			links = export.Filter(links, category)

			out := cmd.OutOrStdout()
			if len(links) == 0 && f == export.FormatMarkdown {
				printLine(out, env.Mode, MsgNoLinks)
				return nil
			}

			data, err := export.Render(links, f)
			if err != nil {
				return err
			}

			text := string(data)
			if f == export.FormatMarkdown && env.Mode == style.ModeTerminal {
				text = style.RenderMarkdown(text, 0)
			}
			_, err = out.Write([]byte(text))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatMarkdown), MsgFlagFormat)
	cmd.Flags().StringVarP(&category, "category", "c", "", MsgFlagFilter)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return export.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
