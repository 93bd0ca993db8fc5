package keeper

import (
	"context"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// Outcome is the result of storing a link in one backend
type Outcome struct {
	Backend string
	Err     error
}

// AddResult reports what happened to a link in every backend
type AddResult struct {
	Link     types.Link
	Outcomes []Outcome
}

// Failed returns the outcomes that carry an error
func (r *AddResult) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// OK reports whether every backend stored the link
func (r *AddResult) OK() bool {
	return len(r.Failed()) == 0
}

// Add stores a link in every activated backend and in the raw log.
// Backend failures are collected in the result and do not stop the
// remaining backends. The error is only set for an invalid link or when
// the raw log cannot be written.
func (k *Keeper) Add(ctx context.Context, url, category string) (*AddResult, error) {
	logger := logging.GetLogger("keeper")

	link := types.NewLink(url, category)
	if err := link.Validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid link %q", url)
	}

	result := &AddResult{Link: link}
	opts := types.LinkOptions{RawFileName: k.config.Settings.RawFileName}

	for _, backend := range k.backends {
		err := backend.AddLink(ctx, link, opts)
		result.Outcomes = append(result.Outcomes, Outcome{Backend: backend.Name(), Err: err})

		if err != nil {
			logger.Error().Err(err).
				Str("backend", backend.Name()).
				Str("url", link.URL).
				Msg("Backend failed to add link")
			continue
		}
		logger.Info().Str("backend", backend.Name()).Str("url", link.URL).Msg("Link added")
	}

	if err := k.rawLog.Append(link); err != nil {
		return result, err
	}
	return result, nil
}
