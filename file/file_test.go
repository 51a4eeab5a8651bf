package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"a.ly", "b.ly"})
	assert.Equal(t, "b.ly", m[1])
}

func TestMidiName(t *testing.T) {
	assert.Equal(t, "scale.mid", MidiName("songs/scale.ly"))
	assert.Equal(t, "noext.mid", MidiName("noext"))
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ly")
	require.NoError(t, os.WriteFile(path, []byte("c d e"), 0666))

	src, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "c d e", src)

	_, err = ReadSource(path + ".missing")
	assert.Error(t, err)
}
