// Package git stores links in a git repository.
//
// Each link is appended to a Markdown index and to a raw JSON log inside
// the working tree, and both files are committed together. With
// push_on_add set, the current branch is then pushed to every remote
// using the SSH agent for ssh remotes. Push failures are logged and never
// fail the add.
package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/markdown"
	"github.com/arthur-debert/linkkeeper/pkg/paths"
	"github.com/arthur-debert/linkkeeper/pkg/rawlog"
	"github.com/arthur-debert/linkkeeper/pkg/registry"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

const (
	// Name keys the backend in the configuration file
	Name = "git"

	// DisplayName is shown in the backend menu
	DisplayName = "Git"

	// CommitterName and CommitterEmail sign every commit
	CommitterName  = "Link keeper"
	CommitterEmail = "link_keeper@users.noreply.github.com"
)

func init() {
	registry.MustRegisterBackend(registry.BackendDescriptor{
		Name:        Name,
		DisplayName: DisplayName,
		Factory: func(raw map[string]interface{}) (types.Backend, error) {
			cfg, err := DecodeConfig(raw)
			if err != nil {
				return nil, err
			}
			return New(cfg)
		},
	})
}

// Backend is the git link store
type Backend struct {
	config Config
	fs     filesystem.FS
	now    func() time.Time
}

// Option configures a Backend
type Option func(*Backend)

// WithClock sets the clock used for commit timestamps
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// New creates a git backend for cfg
func New(cfg Config, opts ...Option) (*Backend, error) {
	if cfg.FileName == "" {
		cfg.FileName = DefaultFileName
	}
	cfg.RepositoryPath = paths.ExpandHome(cfg.RepositoryPath)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid git backend configuration")
	}

	b := &Backend{
		config: cfg,
		fs:     filesystem.NewOS(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Name implements types.Backend
func (b *Backend) Name() string {
	return Name
}

// Config implements types.Backend
func (b *Backend) Config() interface{} {
	return b.config
}

// Settings returns the typed backend configuration
func (b *Backend) Settings() Config {
	return b.config
}

// IndexPath returns the absolute location of the Markdown index
func (b *Backend) IndexPath() string {
	return filepath.Join(b.config.RepositoryPath, b.config.FileName)
}

// Add initializes the repository. An existing repository is left as is.
func (b *Backend) Add(ctx context.Context) error {
	logger := logging.GetLogger("backends.git")
	path := b.config.RepositoryPath

	if err := b.fs.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create repository directory %s", path)
	}

	_, err := gogit.PlainOpen(path)
	if err == nil {
		logger.Info().Str("path", path).Msg("Using existing repository")
		return nil
	}
	if !stderrors.Is(err, gogit.ErrRepositoryNotExists) {
		return errors.Wrapf(err, errors.ErrRepoOpen, "failed to open repository %s", path)
	}

	if _, err := gogit.PlainInit(path, false); err != nil {
		return errors.Wrapf(err, errors.ErrRepoInit, "failed to initialize repository %s", path)
	}
	logger.Info().Str("path", path).Msg("Initialized repository")
	return nil
}

// AddLink writes link to the index and raw log, commits both files and
// pushes when configured.
func (b *Backend) AddLink(ctx context.Context, link types.Link, opts types.LinkOptions) error {
	logger := logging.GetLogger("backends.git")

	if err := link.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid link")
	}

	rawName := opts.RawFileName
	if rawName == "" {
		rawName = paths.RawFileName
	}
	if filepath.Clean(rawName) == filepath.Clean(b.config.FileName) {
		return errors.Newf(errors.ErrConfigInvalid, "index file %s is also the raw log", b.config.FileName)
	}

	repo, err := gogit.PlainOpen(b.config.RepositoryPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRepoOpen, "failed to open repository %s", b.config.RepositoryPath)
	}

	if err := b.writeIndex(link); err != nil {
		return err
	}

	if err := rawlog.New(b.fs, filepath.Join(b.config.RepositoryPath, rawName)).Append(link); err != nil {
		return err
	}

	hash, err := b.commit(repo, CommitMessage(link), b.config.FileName, rawName)
	if err != nil {
		return err
	}
	logger.Info().
		Str("url", link.URL).
		Str("commit", hash.String()).
		Msg("Committed link")

	if b.config.PushOnAdd {
		b.push(ctx, repo)
	}
	return nil
}

func (b *Backend) writeIndex(link types.Link) error {
	path := b.IndexPath()
	if _, err := filesystem.EnsureFile(b.fs, path); err != nil {
		return err
	}

	data, err := b.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	var links []types.Link
	if len(bytes.TrimSpace(data)) > 0 {
		links, err = markdown.Parse(data)
		if err != nil {
			return errors.Wrapf(err, errors.ErrMarkdownParse, "failed to parse %s", path)
		}
	}
	links = append(links, link)

	return filesystem.WriteFileAtomic(b.fs, path, []byte(markdown.Render(links)), 0644)
}

func (b *Backend) commit(repo *gogit.Repository, message string, files ...string) (plumbing.Hash, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrCommit, "failed to open worktree")
	}

	for _, file := range files {
		if _, err := wt.Add(filepath.ToSlash(file)); err != nil {
			return plumbing.ZeroHash, errors.Wrapf(err, errors.ErrCommit, "failed to stage %s", file)
		}
	}

	signature := &object.Signature{
		Name:  CommitterName,
		Email: CommitterEmail,
		When:  b.now(),
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author:    signature,
		Committer: signature,
	})
	if err != nil {
		return plumbing.ZeroHash, errors.Wrap(err, errors.ErrCommit, "failed to commit")
	}
	return hash, nil
}

// CommitMessage describes the commit recording link
func CommitMessage(link types.Link) string {
	msg := fmt.Sprintf("Adding link with url: %s", link.URL)
	if link.HasCategory() {
		msg += fmt.Sprintf(" and category: %s", link.Category)
	}
	return msg
}

// SignIn is a no-op for git
func (b *Backend) SignIn(types.AccessToken) error {
	return nil
}

// SignOut is a no-op for git
func (b *Backend) SignOut(types.AccessToken) error {
	return nil
}
