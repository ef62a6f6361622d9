package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ZacxDev/video-assembler/internal/config"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Fetcher streams remote files to local storage
type Fetcher struct {
	HTTPClient *http.Client

	// Quiet suppresses the progress bar (used by tests)
	Quiet bool
}

// NewFetcher creates a downloader with the fixed per-request timeout
func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{Timeout: config.DownloadTimeout},
	}
}

// Fetch streams url to dest, showing cumulative progress against the
// declared content length (a plain byte counter when the server omits it).
//
// If dest already exists the download is skipped entirely; cached assets are
// assumed stable. Bytes are streamed to dest+".part" and renamed into place
// only after the body is fully read, so an interrupted run never leaves a
// truncated file at dest.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build download request")
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "download request failed for %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	part := dest + ".part"
	out, err := os.Create(part)
	if err != nil {
		return errors.Wrap(err, "failed to create download file")
	}

	written, err := io.Copy(io.MultiWriter(out, f.progress(resp.ContentLength, dest)), resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(part)
		return errors.Wrapf(err, "download of %s interrupted", url)
	}

	if resp.ContentLength > 0 && written != resp.ContentLength {
		os.Remove(part)
		return fmt.Errorf("download %s: got %d bytes, expected %d", url, written, resp.ContentLength)
	}

	if err := os.Rename(part, dest); err != nil {
		os.Remove(part)
		return errors.Wrap(err, "failed to finalize download")
	}

	return nil
}

func (f *Fetcher) progress(total int64, dest string) io.Writer {
	if f.Quiet {
		return io.Discard
	}
	return progressbar.DefaultBytes(total, "DL "+filepath.Base(dest))
}
