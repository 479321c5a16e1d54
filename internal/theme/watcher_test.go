package theme

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	s := DefaultSpec()
	s.Name = "live"
	writeTheme(t, path, s)

	l := NewLoader(dir, nil)
	_, err := l.Load("live")
	require.NoError(t, err)

	changes := make(chan *Theme, 4)
	w := NewWatcher(l, nil)
	w.SetDebounce(10 * time.Millisecond)
	w.SetChangeCallback(func(th *Theme) { changes <- th })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	assert.True(t, w.IsRunning())

	s.Typography.Headings.FontWeight = "800"
	writeTheme(t, path, s)

	select {
	case th := <-changes:
		assert.Equal(t, "800", th.Typography().Headings.FontWeight)
		assert.Same(t, th, l.Current())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for theme reload")
	}
}

func TestWatcher_InvalidWriteKeepsTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	s := DefaultSpec()
	writeTheme(t, path, s)

	l := NewLoader(dir, nil)
	_, err := l.Load("live")
	require.NoError(t, err)

	changes := make(chan *Theme, 4)
	w := NewWatcher(l, nil)
	w.SetDebounce(10 * time.Millisecond)
	w.SetChangeCallback(func(th *Theme) { changes <- th })
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	bad := DefaultSpec()
	bad.PrimaryColor = "doesNotExist"
	writeTheme(t, path, bad)

	select {
	case <-changes:
		t.Fatal("callback must not fire for an invalid theme")
	case <-time.After(300 * time.Millisecond):
	}
	assert.Equal(t, "raioGreen", l.Current().PrimaryColor())
}

func TestWatcher_BundledThemeIsNotWatched(t *testing.T) {
	l := NewLoader("", nil)
	_, err := l.Load("raio")
	require.NoError(t, err)

	w := NewWatcher(l, nil)
	require.NoError(t, w.Start(context.Background()))
	assert.False(t, w.IsRunning())
	w.Stop()
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	writeTheme(t, path, DefaultSpec())

	l := NewLoader(dir, nil)
	_, err := l.Load("live")
	require.NoError(t, err)

	w := NewWatcher(l, nil)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
	assert.False(t, w.IsRunning())
}

func TestWatcher_RestartsAfterContextCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	writeTheme(t, path, DefaultSpec())

	l := NewLoader(dir, nil)
	_, err := l.Load("live")
	require.NoError(t, err)

	w := NewWatcher(l, nil)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	require.True(t, w.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !w.IsRunning() }, 5*time.Second, 10*time.Millisecond)

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	require.NoError(t, w.Start(ctx2))
	assert.True(t, w.IsRunning())
	w.Stop()
	assert.False(t, w.IsRunning())
}
