// Package rawlog maintains the raw link log: a JSON array of every link
// ever added, independent of how any backend formats its own files.
//
// The log is rewritten in full on every append. Writes go through
// filesystem.WriteFileAtomic.
package rawlog

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/logging"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

// Log is a raw link log stored at a fixed path
type Log struct {
	fs   filesystem.FS
	path string
}

// New returns the raw log stored at path
func New(fsys filesystem.FS, path string) *Log {
	return &Log{fs: fsys, path: path}
}

// Path returns the log file path
func (l *Log) Path() string {
	return l.path
}

// Load returns every link in the log in insertion order.
// A missing or empty log holds no links.
func (l *Log) Load() ([]types.Link, error) {
	data, err := l.read()
	if err != nil {
		return nil, err
	}
	return decode(data, l.path)
}

// Append adds link to the end of the log, creating the log if needed
func (l *Log) Append(link types.Link) error {
	if _, err := filesystem.EnsureFile(l.fs, l.path); err != nil {
		return err
	}

	links, err := l.Load()
	if err != nil {
		return err
	}
	links = append(links, link)

	data, err := Encode(links)
	if err != nil {
		return errors.Wrap(err, errors.ErrRawLog, "failed to encode raw log")
	}

	if err := filesystem.WriteFileAtomic(l.fs, l.path, data, 0644); err != nil {
		return err
	}

	logger := logging.GetLogger("rawlog")
	logger.Debug().
		Str("path", l.path).
		Str("url", link.URL).
		Int("links", len(links)).
		Msg("Appended link to raw log")
	return nil
}

// Contains reports whether url occurs anywhere in the raw log contents.
// This is a plain substring test over the file, not a comparison of
// parsed URLs: "https://go.dev" matches a log holding "https://go.dev/doc".
func (l *Log) Contains(url string) (bool, error) {
	data, err := l.read()
	if err != nil {
		return false, err
	}
	return strings.Contains(string(data), url), nil
}

func (l *Log) read() ([]byte, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read raw log %s", l.path)
	}
	return data, nil
}

// Encode renders links as the raw log JSON array. HTML characters are
// left unescaped so URLs appear in the file exactly as given.
func Encode(links []types.Link) ([]byte, error) {
	if links == nil {
		links = []types.Link{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(links); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, path string) ([]types.Link, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []types.Link{}, nil
	}

	var links []types.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRawLog, "failed to parse raw log %s", path).
			WithDetail("path", path)
	}
	if links == nil {
		links = []types.Link{}
	}
	return links, nil
}
