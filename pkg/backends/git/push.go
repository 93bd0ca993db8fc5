package git

import (
	"context"
	stderrors "errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
)

// pushResult is the outcome of pushing to one remote
type pushResult struct {
	Remote string
	Err    error
}

// push sends the current branch to every remote. Failures are logged as
// warnings and reported in the results, never returned.
func (b *Backend) push(ctx context.Context, repo *gogit.Repository) []pushResult {
	logger := logging.GetLogger("backends.git")

	remotes, err := repo.Remotes()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to list remotes, skipping push")
		return nil
	}
	if len(remotes) == 0 {
		logger.Warn().
			Str("path", b.config.RepositoryPath).
			Msg("push_on_add is set but the repository has no remotes, skipping push")
		return nil
	}

	head, err := repo.Head()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve HEAD, skipping push")
		return nil
	}
	refSpec := config.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name()))

	results := make([]pushResult, 0, len(remotes))
	for _, remote := range remotes {
		name := remote.Config().Name
		err := pushRemote(ctx, repo, remote.Config(), refSpec)
		results = append(results, pushResult{Remote: name, Err: err})

		if err != nil {
			logger.Warn().Err(err).Str("remote", name).Msg("Push failed")
			continue
		}
		logger.Info().Str("remote", name).Str("ref", head.Name().Short()).Msg("Pushed")
	}
	return results
}

func pushRemote(ctx context.Context, repo *gogit.Repository, remote *config.RemoteConfig, refSpec config.RefSpec) error {
	auth, err := authFor(remote.URLs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPush, "no credentials for remote %s", remote.Name)
	}

	err = repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remote.Name,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
	})
	if err != nil && !stderrors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return errors.Wrapf(err, errors.ErrPush, "failed to push to %s", remote.Name)
	}
	return nil
}

// authFor returns SSH agent credentials for ssh remotes and nil otherwise
func authFor(urls []string) (transport.AuthMethod, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	endpoint, err := transport.NewEndpoint(urls[0])
	if err != nil {
		return nil, err
	}
	if endpoint.Protocol != "ssh" {
		return nil, nil
	}

	user := endpoint.User
	if user == "" {
		user = "git"
	}
	return gitssh.NewSSHAgentAuth(user)
}
