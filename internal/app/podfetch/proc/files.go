package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tcolgate/mp3"
)

// Files for work with downloaded episode files
type Files struct {
}

// FolderInfo describes one episode folder on disk
type FolderInfo struct {
	Name  string
	Files []FileInfo
}

// FileInfo describes one downloaded file
type FileInfo struct {
	Name string
	Size int64
}

// EnsureFolder creates an episode folder under root if absent and
// returns its path. Creating an existing folder is a no-op.
func (f *Files) EnsureFolder(root, name string) (string, error) {
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Inspect scans root and reports every episode folder with its files,
// sorted by name. Read-only, used to validate the download layout.
func (f *Files) Inspect(root string) ([]FolderInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var result []FolderInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folder := FolderInfo{Name: entry.Name()}
		files, err := os.ReadDir(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			info, err := file.Info()
			if err != nil {
				return nil, err
			}
			folder.Files = append(folder.Files, FileInfo{Name: file.Name(), Size: info.Size()})
		}

		sort.SliceStable(folder.Files, func(i, j int) bool {
			return folder.Files[i].Name < folder.Files[j].Name
		})
		result = append(result, folder)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// AudioDuration sums mp3 frame durations of a downloaded file
func (f *Files) AudioDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath) // nolint
	if err != nil {
		return 0, err
	}
	defer file.Close() // nolint

	dec := mp3.NewDecoder(file)
	var frame mp3.Frame
	var skipped int
	var total time.Duration
	frames := 0
	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if !errors.Is(err, io.EOF) && frames == 0 {
				return 0, err
			}
			break
		}
		total += frame.Duration()
		frames++
	}

	if frames == 0 {
		return 0, fmt.Errorf("no mp3 frames in %s", filePath)
	}
	return total, nil
}
