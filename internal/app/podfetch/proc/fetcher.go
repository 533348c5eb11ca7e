package proc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrEmptyBody marks a transfer that succeeded but produced zero bytes
var ErrEmptyBody = errors.New("empty response body")

// Fetcher downloads single files over http
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewFetcher creates fetcher with request timeout
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: timeout}, UserAgent: userAgent}
}

// FetchFile downloads url into filePath, overwriting an existing file.
// A non-200 status or a zero-byte body is an error, the partial file is removed.
func (f *Fetcher) FetchFile(ctx context.Context, fileURL, filePath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, fileURL)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}

	written, err := io.Copy(file, resp.Body)
	if cerr := file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filePath)
		return err
	}
	if written == 0 {
		_ = os.Remove(filePath)
		return fmt.Errorf("%s: %w", fileURL, ErrEmptyBody)
	}

	return nil
}
