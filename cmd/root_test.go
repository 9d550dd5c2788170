package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickbox/internal/config"
	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
	"pickbox/internal/ui"
)

type pickCall struct {
	cfg *config.Config
	req pickRequest
}

// stubPicker replaces the TUI with a function returning res
func stubPicker(t *testing.T, res ui.Result) *pickCall {
	t.Helper()
	call := &pickCall{}
	orig := runPicker
	runPicker = func(cfg *config.Config, _ eventbus.EventBus, req pickRequest) (ui.Result, error) {
		call.cfg = cfg
		call.req = req
		return res, nil
	}
	t.Cleanup(func() { runPicker = orig })
	return call
}

func stubTerminal(t *testing.T, terminal bool) {
	t.Helper()
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return terminal }
	t.Cleanup(func() { stdinIsTerminal = orig })
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--log", filepath.Join(t.TempDir(), "pickbox.log")))

	err := root.Execute()
	return out.String(), err
}

func TestPickFromArgs(t *testing.T) {
	stubTerminal(t, true)
	call := stubPicker(t, ui.Result{Selected: &domain.Option{Label: "Texas", Value: "TX"}})

	out, err := execute(t, "", "Alaska", "Texas\tTX")
	require.NoError(t, err)
	assert.Equal(t, "TX\n", out)

	assert.Equal(t, []domain.Option{{Label: "Alaska", Value: "Alaska"}, {Label: "Texas", Value: "TX"}}, call.req.Options)
	assert.False(t, call.req.InputTTY)
	assert.Empty(t, call.req.WatchPath)
}

func TestCancelledPick(t *testing.T) {
	stubTerminal(t, true)
	stubPicker(t, ui.Result{Cancelled: true})

	out, err := execute(t, "", "Alaska")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, out)
}

func TestNoOptions(t *testing.T) {
	stubTerminal(t, true)
	stubPicker(t, ui.Result{})

	_, err := execute(t, "")
	assert.ErrorIs(t, err, errNoOptions)
}

func TestPickFromStdin(t *testing.T) {
	stubTerminal(t, false)
	call := stubPicker(t, ui.Result{Selected: &domain.Option{Label: "Alaska", Value: "AK"}})

	out, err := execute(t, "Alaska\tAK\n\nTexas\n")
	require.NoError(t, err)
	assert.Equal(t, "AK\n", out)

	assert.True(t, call.req.InputTTY)
	assert.Len(t, call.req.Options, 2)
}

func TestPickFromFileWithWatch(t *testing.T) {
	stubTerminal(t, true)
	call := stubPicker(t, ui.Result{Selected: &domain.Option{Value: "x"}})

	path := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[option]]\nlabel = \"Ohio\"\nvalue = \"OH\"\n"), 0644))

	_, err := execute(t, "", "--file", path, "--watch", "--query", "oh")
	require.NoError(t, err)

	assert.Equal(t, []domain.Option{{Label: "Ohio", Value: "OH"}}, call.req.Options)
	assert.Equal(t, path, call.req.WatchPath)
	assert.Equal(t, "oh", call.req.Query)
}

func TestWatchNeedsFile(t *testing.T) {
	stubTerminal(t, true)
	stubPicker(t, ui.Result{})

	_, err := execute(t, "", "--watch", "Alaska")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file")
}

func TestFlagsOverrideConfig(t *testing.T) {
	stubTerminal(t, true)
	call := stubPicker(t, ui.Result{Selected: &domain.Option{Value: "x"}})

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_visible = 3\nprompt = \"pick: \"\n"), 0644))

	_, err := execute(t, "", "--config", path, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, call.cfg.MaxVisible)
	assert.Equal(t, "pick: ", call.cfg.Prompt)
	assert.True(t, call.cfg.ResetOnCancel)

	_, err = execute(t, "", "--config", path, "--prompt", "? ", "--height", "99", "--no-reset", "--sort", "label", "a")
	require.NoError(t, err)
	assert.Equal(t, "? ", call.cfg.Prompt)
	assert.Equal(t, config.MaxVisibleLimit, call.cfg.MaxVisible)
	assert.False(t, call.cfg.ResetOnCancel)
	assert.Equal(t, "label", call.cfg.Sort)
}

func TestMissingExplicitConfig(t *testing.T) {
	stubTerminal(t, true)
	stubPicker(t, ui.Result{})

	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.toml"), "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemo(t *testing.T) {
	stubTerminal(t, false) // stdin is ignored by demo
	call := stubPicker(t, ui.Result{Selected: &domain.Option{Label: "Ohio", Value: "OH"}})

	out, err := execute(t, "ignored\n", "demo")
	require.NoError(t, err)
	assert.Equal(t, "OH\n", out)
	assert.Len(t, call.req.Options, 50)
	assert.False(t, call.req.InputTTY)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := execute(t, "", "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = execute(t, "", "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "config", "init", "--force", "--config", path)
	require.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, "", "config", "path", "--config", "/tmp/x.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.toml\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pickbox version "+Version)
}
