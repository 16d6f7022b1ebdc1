package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// Upload sends one asset to the media store.
func (c *Client) Upload(ctx context.Context, file ports.FilePart) (domain.MediaFile, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(file.Field, file.Filename)
	if err != nil {
		return domain.MediaFile{}, fmt.Errorf("encode upload: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return domain.MediaFile{}, fmt.Errorf("encode upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return domain.MediaFile{}, fmt.Errorf("encode upload: %w", err)
	}

	data, err := c.do(ctx, "upload.create", http.MethodPost, "/admin/upload", &buf, w.FormDataContentType())
	if err != nil {
		return domain.MediaFile{}, err
	}

	var saved domain.MediaFile
	if err := json.Unmarshal(data, &saved); err != nil {
		return domain.MediaFile{}, fmt.Errorf("%w: upload: %v", domain.ErrMalformedResponse, err)
	}
	return saved, nil
}

func (c *Client) ListUploads(ctx context.Context) ([]domain.MediaFile, error) {
	var files []domain.MediaFile
	if err := c.getJSON(ctx, "upload.list", "/admin/upload", &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (c *Client) DeleteUpload(ctx context.Context, filename string) error {
	_, err := c.do(ctx, "upload.delete", http.MethodDelete, "/admin/upload/"+filename, nil, "")
	return err
}
