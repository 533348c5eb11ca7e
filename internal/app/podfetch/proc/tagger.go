package proc

import (
	"github.com/bogem/id3v2/v2"
)

// Tagger writes id3 tags to downloaded audio files
type Tagger struct {
	Artist string
	Album  string
}

// Tag sets the title frame on the mp3 at filePath, plus artist and album
// when configured
func (t *Tagger) Tag(filePath, title string) error {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close() // nolint

	tag.SetTitle(title)
	if t.Artist != "" {
		tag.SetArtist(t.Artist)
	}
	if t.Album != "" {
		tag.SetAlbum(t.Album)
	}

	return tag.Save()
}
