package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name FileUploader --filename file_uploader.go

// ErrUploadMismatch is returned when uploader returned different number of files than was submitted.
var ErrUploadMismatch = errors.New("uploaded files don't match submitted assets")

// Fetcher fetches remote files.
type Fetcher interface {
	FetchFile(context.Context, string) (io.ReadCloser, error)
}

// FileUploader uploads batch of files and returns their references in submission order.
type FileUploader interface {
	UploadFiles(ctx context.Context, files []models.FileUpload) ([]models.File, error)
}

// Option is custom configuration of Uploader.
type Option func(u *Uploader)

// Uploader reads assets from images directory or remote urls and uploads them.
type Uploader struct {
	images   fs.FS
	fetcher  Fetcher
	uploader FileUploader
	logger   zerolog.Logger
}

// NewUploader returns new Uploader.
func NewUploader(images fs.FS, fetcher Fetcher, uploader FileUploader, ops ...Option) *Uploader {
	u := &Uploader{
		images:   images,
		fetcher:  fetcher,
		uploader: uploader,
		logger:   zerolog.Nop(),
	}

	for _, op := range ops {
		op(u)
	}

	return u
}

// Upload submits all assets as single batch and returns uploaded files in the same order.
func (u *Uploader) Upload(ctx context.Context, assets []models.Asset) ([]models.File, error) {
	if len(assets) == 0 {
		return nil, nil
	}

	uploads := make([]models.FileUpload, 0, len(assets))
	for _, asset := range assets {
		content, err := u.read(ctx, asset)
		if err != nil {
			return nil, err
		}

		mimeType := asset.MimeType
		if mimeType == "" {
			mimeType = mimetype.Detect(content).String()
		}

		uploads = append(uploads, models.FileUpload{
			Access:   asset.Access,
			Filename: asset.Filename,
			MimeType: mimeType,
			Content:  content,
		})
	}

	files, err := u.uploader.UploadFiles(ctx, uploads)
	if err != nil {
		return nil, fmt.Errorf("can't upload files: %w", err)
	}

	if len(files) != len(uploads) {
		return nil, fmt.Errorf("%w: submitted %d, got %d", ErrUploadMismatch, len(uploads), len(files))
	}

	u.logger.Debug().Int("files", len(files)).Msg("uploaded files")

	return files, nil
}

func (u *Uploader) read(ctx context.Context, asset models.Asset) ([]byte, error) {
	if asset.URL != "" {
		body, err := u.fetcher.FetchFile(ctx, asset.URL)
		if err != nil {
			return nil, fmt.Errorf("can't fetch image %s: %w", asset.URL, err)
		}
		defer body.Close()

		content, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("can't read image %s: %w", asset.URL, err)
		}
		return content, nil
	}

	content, err := fs.ReadFile(u.images, asset.Path)
	if err != nil {
		return nil, fmt.Errorf("can't read image file %s: %w", asset.Path, err)
	}

	return content, nil
}

// WithLogger sets Uploader's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(u *Uploader) {
		u.logger = logger
	}
}
