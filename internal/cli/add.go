package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
)

func newAddCmd(env *Env) *cobra.Command {
	var (
		category string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:     "add <link>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, env, args[0], category, yes)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", MsgFlagCategory)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

func runAdd(cmd *cobra.Command, env *Env, url, category string, yes bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	k, err := env.openKeeper()
	if err != nil {
		return err
	}

	backends := k.ActivatedBackends()
	if len(backends) == 0 {
		printLine(errOut, env.Mode, MsgWarnNoBackends)
	}

	exists, err := k.LinkAlreadyExists(url)
	if err != nil {
		return err
	}
	if exists && !yes {
		printLine(errOut, env.Mode, MsgWarnLinkExists)
		addAnyway, err := env.Prompter.Confirm(MsgAddAnyway, false)
		if err != nil {
			return err
		}
		if !addAnyway {
			printLine(out, env.Mode, MsgNotAdded)
			return nil
		}
	}

	result, err := k.Add(cmd.Context(), url, category)
	if result != nil {
		printAddResult(out, env.Mode, result, k.Settings().RawFilePath())
	}
	if err != nil {
		return err
	}

	if failed := result.Failed(); len(failed) > 0 {
		return errors.Newf(errors.ErrBackendFailed, MsgErrBackendFailed, len(failed), len(result.Outcomes))
	}
	return nil
}
