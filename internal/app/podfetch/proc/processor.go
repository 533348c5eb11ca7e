package proc

import (
	"context"
	"path/filepath"
	"time"

	log "github.com/go-pkgz/lgr"
	"podfetch/internal/app/podfetch/episode"
)

// Processor downloads the files of episodes into per-episode folders
type Processor struct {
	Fetcher *Fetcher
	Files   *Files
	Tagger  *Tagger // nil when tagging is disabled
}

// Result of downloading one episode
type Result struct {
	Episode      episode.Episode
	AudioErr     error
	WorksheetErr error
}

// Complete reports whether both files of the episode landed on disk
func (r Result) Complete() bool {
	return r.AudioErr == nil && r.WorksheetErr == nil
}

// DownloadEpisode fetches the audio and worksheet files of an episode into
// its folder under root. The two transfers are independent, a failed one
// never blocks the sibling.
func (p *Processor) DownloadEpisode(ctx context.Context, ep episode.Episode, root string) Result {
	res := Result{Episode: ep}

	dir, err := p.Files.EnsureFolder(root, ep.FolderName)
	if err != nil {
		log.Printf("[ERROR] can't create folder for %s, %v", ep.Key, err)
		res.AudioErr, res.WorksheetErr = err, err
		return res
	}

	audioPath := filepath.Join(dir, ep.AudioFilename())
	if err := p.Fetcher.FetchFile(ctx, ep.AudioURL, audioPath); err != nil {
		log.Printf("[WARN] can't fetch audio for %s, %v", ep.Key, err)
		res.AudioErr = err
	} else {
		p.afterAudio(audioPath, ep)
	}

	worksheetPath := filepath.Join(dir, ep.WorksheetFilename())
	if err := p.Fetcher.FetchFile(ctx, ep.WorksheetURL, worksheetPath); err != nil {
		log.Printf("[WARN] can't fetch worksheet for %s, %v", ep.Key, err)
		res.WorksheetErr = err
	}

	return res
}

func (p *Processor) afterAudio(audioPath string, ep episode.Episode) {
	if d, err := p.Files.AudioDuration(audioPath); err == nil {
		log.Printf("[INFO] %s audio runs %s", ep.Key, d.Round(time.Second))
	}

	if p.Tagger == nil {
		return
	}
	if err := p.Tagger.Tag(audioPath, ep.FolderName); err != nil {
		log.Printf("[WARN] can't tag %s, %v", audioPath, err)
	}
}
