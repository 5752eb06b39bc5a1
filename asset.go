package sanity

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/spf13/afero"
)

// UploadImage reads the file at path and stores it as an image asset,
// returning the response describing the stored asset document.
//
// The file is read in full before any network traffic, so a missing or
// unreadable path fails with an [ErrIO] error and issues no request. The
// content type is sniffed from the file bytes. Upload shares the same
// context-aware transport as [Client.Fetch] and [Client.Mutate]; there is
// no blocking variant.
func (c *Client) UploadImage(ctx context.Context, path string) (*Response, error) {
	return c.uploadAsset(ctx, path, "images")
}

// UploadFile reads the file at path and stores it as a generic file asset.
// See [Client.UploadImage] for the failure and concurrency behavior.
func (c *Client) UploadFile(ctx context.Context, path string) (*Response, error) {
	return c.uploadAsset(ctx, path, "files")
}

func (c *Client) uploadAsset(ctx context.Context, path, kind string) (*Response, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, newError(CodeIO, "reading "+path, 0, err)
	}

	endpoint := c.endpoint("assets", kind) + "?filename=" + url.QueryEscape(filepath.Base(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, newError(CodeRequestFailed, "building upload request", 0, err)
	}
	req.Header.Set("Content-Type", http.DetectContentType(data))
	c.setHeaders(req)
	return c.do(req)
}
