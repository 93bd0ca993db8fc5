// Package cli builds the linkkeeper command tree.
package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkkeeper/internal/version"
	"github.com/arthur-debert/linkkeeper/pkg/cobrax/topics"
	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/keeper"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/paths"
	"github.com/arthur-debert/linkkeeper/pkg/prompt"
	"github.com/arthur-debert/linkkeeper/pkg/registry"
	"github.com/arthur-debert/linkkeeper/pkg/style"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Env is what commands run against. Tests swap parts of it.
type Env struct {
	FS       filesystem.FS
	Paths    func() (*paths.Paths, error)
	Prompter prompt.Prompter
	Registry registry.Registry[registry.BackendDescriptor]
	Getwd    func() (string, error)

	// Mode decides whether output is styled
	Mode style.Mode
}

// DefaultEnv uses the real filesystem, the XDG config directory and
// interactive prompts
func DefaultEnv() *Env {
	return &Env{
		FS:       filesystem.NewOS(),
		Paths:    paths.New,
		Prompter: prompt.Default(),
		Registry: registry.Backends(),
		Getwd:    os.Getwd,
		Mode:     style.DetectMode(os.Stdout),
	}
}

func (e *Env) openKeeper() (*keeper.Keeper, error) {
	p, err := e.Paths()
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrInitPaths)
	}
	return keeper.Open(e.FS, p, keeper.WithRegistry(e.Registry))
}

// NewRootCmd creates and returns the root command
func NewRootCmd(env *Env) *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "linkkeeper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	initTemplateFormatting(env.Mode)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newAddCmd(env))
	rootCmd.AddCommand(newBackendCmd(env))
	rootCmd.AddCommand(newListCmd(env))

	installTopics(rootCmd, env.Mode)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func installTopics(rootCmd *cobra.Command, mode style.Mode) {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if mode == style.ModeTerminal {
		renderer = &topics.MarkdownRenderer{Func: func(content string) string {
			return style.RenderMarkdown(content, 0)
		}}
	}
	if _, err := topics.Install(rootCmd, source, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
