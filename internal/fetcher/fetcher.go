package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Fetcher builds http requests and fetches remote images via http.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// FetchFile returns ReadCloser with image fetched from provided url or error.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchFile(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "image/*")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isSupportedContentType(contentType) {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrContentTypeNotSupported, contentType)
	}

	if resp.Header.Get("Content-Encoding") == "gzip" || contentType == "application/gzip" {
		return decompressResponse(resp.Body)
	}

	return resp.Body, nil
}

func isSupportedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") ||
		contentType == "application/octet-stream" ||
		contentType == "application/gzip"
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		_ = response.Close()
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}
