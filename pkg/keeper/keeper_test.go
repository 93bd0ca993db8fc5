package keeper_test

import (
	"context"
	"encoding/json"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
	"github.com/arthur-debert/linkkeeper/pkg/filesystem"
	"github.com/arthur-debert/linkkeeper/pkg/keeper"
	"github.com/arthur-debert/linkkeeper/pkg/paths"
	"github.com/arthur-debert/linkkeeper/pkg/registry"
	"github.com/arthur-debert/linkkeeper/pkg/types"
)

const configDir = "/home/u/.config/link-keeper"

type memoConfig struct {
	Folder string `toml:"folder"`
}

type fakeBackend struct {
	name    string
	folder  string
	addErr  error
	linkErr error

	initialized int
	links       []types.Link
	opts        []types.LinkOptions
}

func (f *fakeBackend) Name() string { return f.name }
func (f *fakeBackend) SignIn(types.AccessToken) error { return nil }
func (f *fakeBackend) SignOut(types.AccessToken) error { return nil }
func (f *fakeBackend) Config() interface{} { return memoConfig{Folder: f.folder} }

func (f *fakeBackend) Add(context.Context) error {
	f.initialized++
	return f.addErr
}

func (f *fakeBackend) AddLink(_ context.Context, link types.Link, opts types.LinkOptions) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.links = append(f.links, link)
	f.opts = append(f.opts, opts)
	return nil
}

func testRegistry() registry.Registry[registry.BackendDescriptor] {
	reg := registry.New[registry.BackendDescriptor]()
	for _, name := range []string{"memo", "notes"} {
		name := name
		registry.MustRegister(reg, name, registry.BackendDescriptor{
			Name:        name,
			DisplayName: name,
			Factory: func(raw map[string]interface{}) (types.Backend, error) {
				folder, _ := raw["folder"].(string)
				return &fakeBackend{name: name, folder: folder}, nil
			},
		})
	}
	return reg
}

func open(t *testing.T, fsys filesystem.FS) *keeper.Keeper {
	t.Helper()
	p, err := paths.NewWithConfigDir(configDir)
	require.NoError(t, err)
	k, err := keeper.Open(fsys, p, keeper.WithRegistry(testRegistry()))
	require.NoError(t, err)
	return k
}

func rawLinks(t *testing.T, fsys filesystem.FS) []map[string]interface{} {
	t.Helper()
	data, err := fsys.ReadFile(configDir + "/raw.json")
	require.NoError(t, err)
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestOpen_FirstRun(t *testing.T) {
	fsys := filesystem.NewMemory()

	k := open(t, fsys)

	assert.Empty(t, k.ActivatedBackends())
	assert.True(t, filesystem.Exists(fsys, configDir+"/link-keeper.toml"))
	assert.Equal(t, configDir+"/link-keeper.toml", k.ConfigPath())
	assert.Equal(t, "raw.json", k.Settings().RawFileName)
}

func TestAddBackend_PersistsAndRestores(t *testing.T) {
	fsys := filesystem.NewMemory()
	ctx := context.Background()
	k := open(t, fsys)

	memo := &fakeBackend{name: "memo", folder: "/m"}
	require.NoError(t, k.AddBackend(ctx, memo))
	assert.Equal(t, 1, memo.initialized)

	data, err := fsys.ReadFile(k.ConfigPath())
	require.NoError(t, err)
	var doc struct {
		Backends map[string]memoConfig `toml:"backends"`
	}
	require.NoError(t, gotoml.Unmarshal(data, &doc))
	assert.Equal(t, memoConfig{Folder: "/m"}, doc.Backends["memo"])

	reopened := open(t, fsys)
	backends := reopened.ActivatedBackends()
	require.Len(t, backends, 1)
	assert.Equal(t, "memo", backends[0].Name())
	assert.Equal(t, memoConfig{Folder: "/m"}, backends[0].Config())
}

func TestAddBackend_RestoresInSortedOrder(t *testing.T) {
	fsys := filesystem.NewMemory()
	ctx := context.Background()
	k := open(t, fsys)

	require.NoError(t, k.AddBackend(ctx, &fakeBackend{name: "notes"}))
	require.NoError(t, k.AddBackend(ctx, &fakeBackend{name: "memo"}))

	var names []string
	for _, b := range open(t, fsys).ActivatedBackends() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"memo", "notes"}, names)
}

func TestAddBackend_Duplicate(t *testing.T) {
	k := open(t, filesystem.NewMemory())
	ctx := context.Background()

	require.NoError(t, k.AddBackend(ctx, &fakeBackend{name: "memo"}))
	second := &fakeBackend{name: "memo"}
	err := k.AddBackend(ctx, second)

	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, 0, second.initialized)
	assert.Len(t, k.ActivatedBackends(), 1)
}

func TestAddBackend_InitFailure(t *testing.T) {
	fsys := filesystem.NewMemory()
	k := open(t, fsys)

	err := k.AddBackend(context.Background(), &fakeBackend{
		name:   "memo",
		addErr: errors.New(errors.ErrRepoInit, "boom"),
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrRepoInit))
	assert.Empty(t, k.ActivatedBackends())
	assert.Empty(t, open(t, fsys).ActivatedBackends())
}

func TestAvailableBackends(t *testing.T) {
	k := open(t, filesystem.NewMemory())
	require.NoError(t, k.AddBackend(context.Background(), &fakeBackend{name: "memo"}))

	available := k.AvailableBackends()
	require.Len(t, available, 1)
	assert.Equal(t, "notes", available[0].Name)
}

func TestOpen_UnknownBackend(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile(configDir+"/link-keeper.toml", []byte("[backends.dropbox]\ntoken = \"x\"\n"), 0644))
	p, err := paths.NewWithConfigDir(configDir)
	require.NoError(t, err)

	_, err = keeper.Open(fsys, p, keeper.WithRegistry(testRegistry()))
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackendUnknown))
}

func TestAdd_FansOutAndLogs(t *testing.T) {
	fsys := filesystem.NewMemory()
	memo := &fakeBackend{name: "memo"}
	notes := &fakeBackend{name: "notes"}
	k := open(t, fsys)
	require.NoError(t, k.AddBackend(context.Background(), memo))
	require.NoError(t, k.AddBackend(context.Background(), notes))

	result, err := k.Add(context.Background(), "https://go.dev", "Go")
	require.NoError(t, err)

	assert.True(t, result.OK())
	assert.Equal(t, types.NewLink("https://go.dev", "Go"), result.Link)
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, "memo", result.Outcomes[0].Backend)
	assert.Equal(t, "notes", result.Outcomes[1].Backend)

	for _, b := range []*fakeBackend{memo, notes} {
		assert.Equal(t, []types.Link{types.NewLink("https://go.dev", "Go")}, b.links)
		assert.Equal(t, "raw.json", b.opts[0].RawFileName)
	}

	raw := rawLinks(t, fsys)
	require.Len(t, raw, 1)
	assert.Equal(t, "https://go.dev", raw[0]["url"])
	assert.Equal(t, "Go", raw[0]["category"])
}

func TestAdd_BackendFailureDoesNotStopOthers(t *testing.T) {
	fsys := filesystem.NewMemory()
	failing := &fakeBackend{name: "memo", linkErr: errors.New(errors.ErrCommit, "commit failed")}
	working := &fakeBackend{name: "notes"}
	k := open(t, fsys)
	require.NoError(t, k.AddBackend(context.Background(), failing))
	require.NoError(t, k.AddBackend(context.Background(), working))

	result, err := k.Add(context.Background(), "https://go.dev", "")
	require.NoError(t, err)

	assert.False(t, result.OK())
	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "memo", failed[0].Backend)
	assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrCommit))
	assert.Len(t, working.links, 1)
	assert.Len(t, rawLinks(t, fsys), 1)
}

func TestAdd_NoBackendsStillLogs(t *testing.T) {
	fsys := filesystem.NewMemory()
	k := open(t, fsys)

	result, err := k.Add(context.Background(), "https://go.dev", "")
	require.NoError(t, err)

	assert.Empty(t, result.Outcomes)
	raw := rawLinks(t, fsys)
	require.Len(t, raw, 1)
	assert.Nil(t, raw[0]["category"])
}

func TestAdd_InvalidLink(t *testing.T) {
	k := open(t, filesystem.NewMemory())

	_, err := k.Add(context.Background(), "   ", "Go")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestAdd_RawLogKeepsInsertionOrder(t *testing.T) {
	fsys := filesystem.NewMemory()
	k := open(t, fsys)
	urls := []string{"https://a.example", "https://b.example", "https://c.example", "https://a.example"}

	for _, url := range urls {
		_, err := k.Add(context.Background(), url, "")
		require.NoError(t, err)
	}

	raw := rawLinks(t, fsys)
	require.Len(t, raw, len(urls))
	for i, url := range urls {
		assert.Equal(t, url, raw[i]["url"])
	}

	links, err := k.Links()
	require.NoError(t, err)
	assert.Len(t, links, len(urls))
}

func TestLinkAlreadyExists(t *testing.T) {
	k := open(t, filesystem.NewMemory())

	exists, err := k.LinkAlreadyExists("https://go.dev")
	require.NoError(t, err)
	assert.False(t, exists, "missing raw log means no links")

	_, err = k.Add(context.Background(), "https://go.dev/doc?a=1&b=2", "")
	require.NoError(t, err)

	for url, want := range map[string]bool{
		"https://go.dev/doc?a=1&b=2": true,
		"https://go.dev":             true,
		"go.dev/doc":                 true,
		"https://pkg.go.dev":         false,
	} {
		exists, err := k.LinkAlreadyExists(url)
		require.NoError(t, err)
		assert.Equal(t, want, exists, url)
	}
}
