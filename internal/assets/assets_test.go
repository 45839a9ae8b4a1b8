package assets_test

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/MichalMitros/commerce-seeder/internal/assets"
	"github.com/MichalMitros/commerce-seeder/internal/assets/mocks"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models/modelstesting"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func TestUnitUpload(t *testing.T) {
	local := modelstesting.FakeAsset(func(a *models.Asset) { a.MimeType = "" })
	remote := modelstesting.FakeAsset(func(a *models.Asset) {
		a.Path = ""
		a.URL = "https://cdn.example.com/" + a.Filename
		a.Access = "private"
	})
	images := fstest.MapFS{local.Path: &fstest.MapFile{Data: pngImage}}

	files := []models.File{
		{ID: faker.UUIDDigit(), URL: faker.URL()},
		{ID: faker.UUIDDigit(), URL: faker.URL()},
	}

	fetcher := mocks.NewFetcher(t)
	fetcher.On("FetchFile", mock.Anything, remote.URL).
		Return(io.NopCloser(strings.NewReader("remote-content")), nil).Once()

	uploader := mocks.NewFileUploader(t)
	uploader.On("UploadFiles", mock.Anything, []models.FileUpload{
		{Access: "public", Filename: local.Filename, MimeType: "image/png", Content: pngImage},
		{Access: "private", Filename: remote.Filename, MimeType: remote.MimeType, Content: []byte("remote-content")},
	}).Return(files, nil).Once()

	result, err := assets.NewUploader(images, fetcher, uploader).Upload(context.TODO(), []models.Asset{local, remote})

	require.NoError(t, err)
	assert.Equal(t, files, result, "should return files in submission order")
}

func TestUnitUploadEmpty(t *testing.T) {
	result, err := assets.NewUploader(fstest.MapFS{}, mocks.NewFetcher(t), mocks.NewFileUploader(t)).
		Upload(context.TODO(), nil)

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestUnitUploadErrors(t *testing.T) {
	asset := modelstesting.FakeAsset()
	remote := modelstesting.FakeAsset(func(a *models.Asset) {
		a.Path = ""
		a.URL = faker.URL()
	})
	images := fstest.MapFS{asset.Path: &fstest.MapFile{Data: pngImage}}

	tests := map[string]struct {
		assets  []models.Asset
		setup   func(f *mocks.Fetcher, u *mocks.FileUploader)
		wantErr error
		wantMsg string
	}{
		"missing local file": {
			assets:  []models.Asset{modelstesting.FakeAsset(func(a *models.Asset) { a.Path = "missing.png" })},
			setup:   func(f *mocks.Fetcher, u *mocks.FileUploader) {},
			wantErr: fs.ErrNotExist,
			wantMsg: "missing.png",
		},
		"fetch error": {
			assets: []models.Asset{remote},
			setup: func(f *mocks.Fetcher, u *mocks.FileUploader) {
				f.On("FetchFile", mock.Anything, remote.URL).Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
			wantMsg: remote.URL,
		},
		"upload error": {
			assets: []models.Asset{asset},
			setup: func(f *mocks.Fetcher, u *mocks.FileUploader) {
				u.On("UploadFiles", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
			wantMsg: "can't upload files",
		},
		"fewer files than assets": {
			assets: []models.Asset{asset, asset},
			setup: func(f *mocks.Fetcher, u *mocks.FileUploader) {
				u.On("UploadFiles", mock.Anything, mock.Anything).
					Return([]models.File{{ID: faker.UUIDDigit()}}, nil).Once()
			},
			wantErr: assets.ErrUploadMismatch,
			wantMsg: "submitted 2, got 1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := mocks.NewFetcher(t)
			uploader := mocks.NewFileUploader(t)
			tt.setup(fetcher, uploader)

			result, err := assets.NewUploader(images, fetcher, uploader).Upload(context.TODO(), tt.assets)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, result)
		})
	}
}
