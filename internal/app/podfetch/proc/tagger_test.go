package proc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episode_download.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake mp3 payload"), 0o600))

	tagger := &Tagger{Artist: "BBC Learning English", Album: "6 Minute English"}
	require.NoError(t, tagger.Tag(path, "Do You Like Garlic"))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close() // nolint

	assert.Equal(t, "Do You Like Garlic", tag.Title())
	assert.Equal(t, "BBC Learning English", tag.Artist())
	assert.Equal(t, "6 Minute English", tag.Album())
}

func TestTagNoFile(t *testing.T) {
	tagger := &Tagger{}
	err := tagger.Tag(filepath.Join(t.TempDir(), "nope.mp3"), "Title")
	assert.Error(t, err)
}
