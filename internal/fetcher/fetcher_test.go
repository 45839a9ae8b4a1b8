package fetcher_test

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MichalMitros/commerce-seeder/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent   = "test/0.0.0"
	endpoint    = "/image.png"
	contentType = "Content-Type"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUnitFetchFile(t *testing.T) {
	wantHeaders := map[string]string{
		"User-Agent":      userAgent,
		"Accept":          "image/*",
		"Accept-Encoding": "gzip",
	}

	tests := map[string]struct {
		serverHandler http.Handler
		wantBody      []byte
		wantErr       error
	}{
		"ok png": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "image/png")
				wrt.WriteHeader(http.StatusOK)
				wrt.Write(pngImage)
			}),
			wantBody: pngImage,
		},
		"ok octet stream": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.Header().Add(contentType, "application/octet-stream")
				wrt.WriteHeader(http.StatusOK)
				wrt.Write(pngImage)
			}),
			wantBody: pngImage,
		},
		"ok gzip encoded": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "image/png")
				wrt.Header().Add("Content-Encoding", "gzip")
				wrt.WriteHeader(http.StatusOK)
				compressedWrt := gzip.NewWriter(wrt)
				compressedWrt.Write(pngImage)
				compressedWrt.Close()
			}),
			wantBody: pngImage,
		},
		"bad status error": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.WriteHeader(http.StatusNotFound)
			}),
			wantErr: fetcher.ErrStatusNotOK,
		},
		"bad content type error": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				wrt.Header().Add(contentType, "text/html")
				wrt.WriteHeader(http.StatusOK)
				wrt.Write([]byte("<html></html>"))
			}),
			wantErr: fetcher.ErrContentTypeNotSupported,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(func() {
				srv.Close()
			})

			fet := fetcher.NewFetcher(srv.Client(), userAgent)
			resp, err := fet.FetchFile(context.TODO(), srv.URL+endpoint)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")

			if tt.wantBody != nil {
				assert.Equal(t, tt.wantBody, readAndClose(t, resp), "should return correct response")
			}
		})
	}
}

func TestUnitFetchFileCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.NewFetcher(srv.Client(), userAgent).FetchFile(ctx, srv.URL+endpoint)

	assert.ErrorIs(t, err, context.Canceled)
}

// readAndClose reads ReadCloser, closes it and returns its content.
func readAndClose(t *testing.T, reader io.ReadCloser) []byte {
	t.Helper()

	if !assert.NotNil(t, reader, "reader shouldn't be nil") {
		return nil
	}

	result, err := io.ReadAll(reader)
	if !assert.NoError(t, err, "can't read reader") {
		return nil
	}

	assert.NoError(t, reader.Close(), "can't close reader")

	return result
}

func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
