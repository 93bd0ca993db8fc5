package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkkeeper/pkg/backends/git"
	"github.com/arthur-debert/linkkeeper/pkg/backends/github"
	"github.com/arthur-debert/linkkeeper/pkg/prompt"
	"github.com/arthur-debert/linkkeeper/pkg/registry"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// backendSetup asks the questions needed to configure one backend type
type backendSetup func(env *Env, p prompt.Prompter, desc registry.BackendDescriptor) (types.Backend, error)

var backendSetups = map[string]backendSetup{
	git.Name:    setupGit,
	github.Name: setupGithub,
}

func newBackendCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backend",
		Short: MsgBackendShort,
	}
	cmd.AddCommand(newBackendAddCmd(env))
	cmd.AddCommand(newBackendListCmd(env))
	return cmd
}

func newBackendAddCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: MsgBackendAddShort,
		Long:  MsgBackendAddLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackendAdd(cmd, env)
		},
	}
}

func runBackendAdd(cmd *cobra.Command, env *Env) error {
	k, err := env.openKeeper()
	if err != nil {
		return err
	}

	available := k.AvailableBackends()
	if len(available) == 0 {
		printLine(cmd.OutOrStdout(), env.Mode, MsgAllBackendsActive)
		return nil
	}

	options := make([]string, len(available))
	for i, desc := range available {
		options[i] = desc.DisplayName
	}
	choice, err := env.Prompter.Select(MsgChooseBackend, options)
	if err != nil {
		return err
	}
	desc := available[choice]

	setup, ok := backendSetups[desc.Name]
	if !ok {
		setup = setupDefault
	}
	backend, err := setup(env, env.Prompter, desc)
	if err != nil {
		return err
	}

	if err := k.AddBackend(cmd.Context(), backend); err != nil {
		return err
	}
	printLine(cmd.OutOrStdout(), env.Mode, MsgBackendAddedFormat, backend.Name(), k.ConfigPath())
	return nil
}

func setupGit(env *Env, p prompt.Prompter, _ registry.BackendDescriptor) (types.Backend, error) {
	cwd, err := env.Getwd()
	if err != nil {
		cwd = "."
	}

	repository, err := p.Text(MsgAskRepository, cwd)
	if err != nil {
		return nil, err
	}
	fileName, err := p.Text(MsgAskFileName, git.DefaultFileName)
	if err != nil {
		return nil, err
	}
	pushOnAdd, err := p.Confirm(MsgAskPushOnAdd, true)
	if err != nil {
		return nil, err
	}

	return git.New(git.Config{
		RepositoryPath: repository,
		FileName:       fileName,
		PushOnAdd:      pushOnAdd,
	})
}

func setupGithub(_ *Env, p prompt.Prompter, desc registry.BackendDescriptor) (types.Backend, error) {
	token, err := p.Secret(fmt.Sprintf(MsgAskTokenFormat, desc.DisplayName))
	if err != nil {
		return nil, err
	}

	backend := github.New(github.Config{AccessToken: types.AccessToken(token)})
	if err := backend.SignIn(types.AccessToken(token)); err != nil {
		return nil, err
	}
	return backend, nil
}

// setupDefault builds a backend that needs no questions
func setupDefault(env *Env, _ prompt.Prompter, desc registry.BackendDescriptor) (types.Backend, error) {
	return registry.NewBackend(env.Registry, desc.Name, nil)
}

func newBackendListCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgBackendListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := env.openKeeper()
			if err != nil {
				return err
			}

			backends := k.ActivatedBackends()
			if len(backends) == 0 {
				printLine(cmd.OutOrStdout(), env.Mode, MsgNoActiveBackends)
				return nil
			}
			return printBackends(cmd.OutOrStdout(), env.Mode, backends)
		},
	}
}
