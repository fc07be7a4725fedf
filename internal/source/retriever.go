package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ryanccn/nyoom/internal/fsutil"
	"github.com/ryanccn/nyoom/internal/logging"
)

const userAgent = "nyoom (+https://github.com/ryanccn/nyoom)"

// Retriever fetches sources into a local directory
type Retriever struct {
	Client   *http.Client
	Progress Progress // optional
	Log      logrus.FieldLogger
}

// NewRetriever creates a retriever using the default HTTP client
func NewRetriever(progress Progress) *Retriever {
	return &Retriever{
		Client:   http.DefaultClient,
		Progress: progress,
		Log:      logging.Log,
	}
}

// Retrieve materialises src into dst. Hosted repos and remote archives are
// downloaded and unpacked, local paths are copied verbatim. dst is only
// written once the archive has been fully unpacked elsewhere.
func (r *Retriever) Retrieve(ctx context.Context, src Source, dst string) error {
	switch s := src.(type) {
	case HostedRepo:
		u, err := url.Parse(s.ArchiveURL())
		if err != nil {
			return &SourceError{Op: "retrieve", Source: s.String(), Err: err}
		}
		return r.archive(ctx, u, dst)

	case RemoteArchive:
		return r.archive(ctx, s.URL, dst)

	case LocalPath:
		r.log().WithField("path", s.Path).Debug("copying local source")
		if err := fsutil.CopyTreeWithLogger(s.Path, dst, r.log()); err != nil {
			return &SourceError{Op: "copy", Source: s.Path, Err: err}
		}
		return nil
	}

	return &SourceError{Op: "retrieve", Err: fmt.Errorf("%w: %T", ErrInvalidSource, src)}
}

func (r *Retriever) archive(ctx context.Context, u *url.URL, dst string) error {
	format, err := DetectFormat(u.Path)
	if err != nil {
		return &SourceError{Op: "retrieve", Source: u.String(), Err: err}
	}

	data, err := r.download(ctx, u)
	if err != nil {
		return err
	}

	log := r.log().WithFields(logrus.Fields{"url": u.String(), "format": format, "bytes": len(data)})
	log.Debug("downloaded archive")

	tmp, err := os.MkdirTemp("", "nyoom-extract-*")
	if err != nil {
		return &SourceError{Op: "extract", Source: u.String(), Err: err}
	}
	defer os.RemoveAll(tmp)

	if err := Extract(format, data, tmp); err != nil {
		return &SourceError{Op: "extract", Source: u.String(), Err: err}
	}

	if err := StripRoot(tmp); err != nil {
		return &SourceError{Op: "extract", Source: u.String(), Err: err}
	}

	log.WithField("dest", dst).Debug("copying extracted archive")
	if err := fsutil.CopyTreeWithLogger(tmp, dst, r.log()); err != nil {
		return &SourceError{Op: "copy", Source: u.String(), Err: err}
	}

	return nil
}

func (r *Retriever) download(ctx context.Context, u *url.URL) ([]byte, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &SourceError{Op: "download", Source: u.String(), Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceError{Op: "download", Source: u.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SourceError{Op: "download", Source: u.String(),
			Err: fmt.Errorf("%w: status %s", ErrDownloadFailed, resp.Status)}
	}

	var reader io.Reader = resp.Body
	if r.Progress != nil {
		r.Progress.Start(u.String(), resp.ContentLength)
		reader = io.TeeReader(resp.Body, progressWriter{progress: r.Progress})
	}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, reader)
	if r.Progress != nil {
		r.Progress.Finish(err)
	}
	if err != nil {
		return nil, &SourceError{Op: "download", Source: u.String(), Err: err}
	}

	return buf.Bytes(), nil
}

func (r *Retriever) log() logrus.FieldLogger {
	return logging.Or(r.Log)
}
