package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bep/debounce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/motif/midi"
)

func TestWatchEventsDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ly")
	other := filepath.Join(dir, "b.ly")
	require.NoError(t, os.WriteFile(path, []byte("c"), 0666))

	w, paths, err := newWatcher([]string{path})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int32
	debounced := debounce.New(100 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		watchEvents(ctx, w, paths, func() {
			debounced(func() { atomic.AddInt32(&calls, 1) })
		})
		close(done)
	}()

	for _, src := range []string{"c d", "c d e", "c d e f"} {
		require.NoError(t, os.WriteFile(path, []byte(src), 0666))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, 2*time.Second, 10*time.Millisecond)

	// files next to the watched one are ignored
	require.NoError(t, os.WriteFile(other, []byte("c"), 0666))
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	cancel()
	<-done
}

func TestNewWatcherRejectsMissingDirectory(t *testing.T) {
	_, _, err := newWatcher([]string{filepath.Join(t.TempDir(), "nope", "a.ly")})
	assert.Error(t, err)
}

func TestRebuildSong(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.ly")
	out := filepath.Join(dir, "a.mid")
	require.NoError(t, os.WriteFile(src, []byte("c d e"), 0666))

	require.NoError(t, rebuildSong([]string{src}, out))
	song, err := midi.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, song.Tracks[0].Len())

	require.NoError(t, os.WriteFile(src, []byte("c }"), 0666))
	assert.Error(t, rebuildSong([]string{src}, out))
}
