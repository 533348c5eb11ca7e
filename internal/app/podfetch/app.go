package podfetch

import (
	"context"
	"fmt"
	"os"

	log "github.com/go-pkgz/lgr"
	"podfetch/internal/app/podfetch/episode"
	"podfetch/internal/app/podfetch/proc"
	"podfetch/internal/configs"
)

// App of podfetch
type App struct {
	config    *configs.Conf
	parser    *episode.Parser
	processor *proc.Processor
}

// Stats of one download pass
type Stats struct {
	Episodes     int
	Complete     int
	Partial      int
	Failed       int
	FilesFetched int
	FilesFailed  int
}

// NewApplication creates app from config and processor
func NewApplication(conf *configs.Conf, p *proc.Processor) (*App, error) {
	app := App{config: conf, parser: episode.NewParser(conf.SeriesAliases), processor: p}
	return &app, nil
}

// Run downloads every complete episode listed in the links file and logs a
// summary. Per-episode failures never stop the pass, only an unreadable
// links file or an unwritable download root do.
func (a *App) Run(ctx context.Context) (Stats, error) {
	data, err := os.ReadFile(a.config.LinksFile)
	if err != nil {
		return Stats{}, fmt.Errorf("can't read links file %s: %w", a.config.LinksFile, err)
	}

	episodes := a.parser.Parse(string(data))
	stats := Stats{Episodes: len(episodes)}
	if len(episodes) == 0 {
		log.Printf("[WARN] no complete episodes in %s", a.config.LinksFile)
		return stats, nil
	}

	root := a.config.Download.Folder
	if err := os.MkdirAll(root, 0o755); err != nil {
		return stats, fmt.Errorf("can't create download root %s: %w", root, err)
	}

	for i, ep := range episodes {
		log.Printf("[INFO] [%d/%d] %s", i+1, len(episodes), ep.FolderName)
		res := a.processor.DownloadEpisode(ctx, ep, root)

		for _, ferr := range []error{res.AudioErr, res.WorksheetErr} {
			if ferr != nil {
				stats.FilesFailed++
			} else {
				stats.FilesFetched++
			}
		}

		switch {
		case res.Complete():
			stats.Complete++
		case res.AudioErr != nil && res.WorksheetErr != nil:
			stats.Failed++
		default:
			stats.Partial++
		}
	}

	log.Printf("[INFO] done: %d complete, %d partial, %d failed of %d episodes, %d files fetched, %d failed",
		stats.Complete, stats.Partial, stats.Failed, stats.Episodes, stats.FilesFetched, stats.FilesFailed)
	return stats, nil
}
