package commerce

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
)

const accessPrivate = "private"

// UploadFiles uploads files and returns their references in upload order.
// Consecutive files of the same access are sent as one multipart request.
func (c *Client) UploadFiles(ctx context.Context, files []models.FileUpload) ([]models.File, error) {
	uploaded := make([]models.File, 0, len(files))

	for start := 0; start < len(files); {
		end := start + 1
		for end < len(files) && files[end].Access == files[start].Access {
			end++
		}

		batch, err := c.uploadBatch(ctx, files[start:end])
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, batch...)

		start = end
	}

	return uploaded, nil
}

func (c *Client) uploadBatch(ctx context.Context, files []models.FileUpload) ([]models.File, error) {
	path := "/admin/uploads"
	if files[0].Access == accessPrivate {
		path = "/admin/uploads/protected"
	}

	apiErr := &APIError{}
	var res filesResponse
	req := c.http.R().
		SetContext(ctx).
		SetError(apiErr).
		SetResult(&res)
	for _, f := range files {
		req.SetMultipartField("files", f.Filename, f.MimeType, bytes.NewReader(f.Content))
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("can't upload %d files: %w", len(files), err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return nil, fmt.Errorf("can't upload %d files: %w", len(files), apiErr)
	}

	c.logger.Debug().Str("path", path).Int("files", len(res.Files)).Msg("uploaded files")

	return res.Files, nil
}
