package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
)

func TestParseLines(t *testing.T) {
	input := "Ohio\tOH\n\n  \nTexas\r\nNew York\tNY\textra\n"
	options, err := ParseLines(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []domain.Option{
		{Label: "Ohio", Value: "OH"},
		{Label: "Texas", Value: "Texas"},
		{Label: "New York", Value: "NY\textra"},
	}, options)
}

func TestParseLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	options, err := ParseLines(strings.NewReader(long + "\nshort\n"))
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Len(t, options[0].Label, len(long))
}

func TestFromArgs(t *testing.T) {
	options := FromArgs([]string{"red", "", "green\t#0f0"})
	assert.Equal(t, []domain.Option{
		{Label: "red", Value: "red"},
		{Label: "green", Value: "#0f0"},
	}, options)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[[option]]
label = "Ohio"
value = "OH"

[[option]]
label = "Texas"
`)
	options, err := ParseTOML(data)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{
		{Label: "Ohio", Value: "OH"},
		{Label: "Texas", Value: "Texas"},
	}, options)

	_, err = ParseTOML([]byte("[[option]]\nvalue = \"x\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no label")

	_, err = ParseTOML([]byte("[[option"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "colors.txt")
	require.NoError(t, os.WriteFile(txt, []byte("red\ngreen\n"), 0644))
	options, err := LoadFile(txt)
	require.NoError(t, err)
	assert.Len(t, options, 2)

	tomlPath := filepath.Join(dir, "colors.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[option]]\nlabel = \"blue\"\n"), 0644))
	options, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{{Label: "blue", Value: "blue"}}, options)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestDemoOptions(t *testing.T) {
	options := DemoOptions()
	require.Len(t, options, 50)
	assert.Equal(t, domain.Option{Label: "Alabama", Value: "AL"}, options[0])
	assert.Equal(t, domain.Option{Label: "Wyoming", Value: "WY"}, options[49])
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	bus := eventbus.New()
	defer bus.Close()

	loaded := make(chan eventbus.OptionsLoadedEvent, 4)
	bus.Subscribe(eventbus.EventOptionsLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.OptionsLoadedEvent)
	})

	w := NewWatcher(path, bus)
	w.SetDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	select {
	case e := <-loaded:
		assert.Equal(t, filepath.Clean(path), e.Source)
		assert.Len(t, e.Options, 2)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not publish a reload")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherReloadPublishesErrors(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	errs := make(chan eventbus.ErrorEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		errs <- e.(eventbus.ErrorEvent)
	})

	w := NewWatcher(filepath.Join(t.TempDir(), "gone.txt"), bus)
	require.Error(t, w.Reload())

	select {
	case e := <-errs:
		assert.Equal(t, "reload options", e.Message)
		assert.Error(t, e.Err)
	case <-time.After(2 * time.Second):
		t.Fatal("no error event")
	}
}
