package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// Media is the upload manager behind the admin media screen.
type Media struct {
	gw     ports.MediaGateway
	toasts *Toasts
	log    zerolog.Logger

	cache *ListCache[domain.MediaFile]
}

func NewMedia(gw ports.MediaGateway, toasts *Toasts, log zerolog.Logger) *Media {
	return &Media{
		gw:     gw,
		toasts: toasts,
		log:    log,
		cache:  NewListCache[domain.MediaFile](),
	}
}

func (m *Media) Cache() *ListCache[domain.MediaFile] { return m.cache }

// Refresh reloads the asset listing.
func (m *Media) Refresh(ctx context.Context) error {
	files, err := m.gw.ListUploads(ctx)
	if err != nil {
		return err
	}
	m.cache.Replace(files)
	return nil
}

// Upload sends one asset and inserts the stored record into the listing.
func (m *Media) Upload(ctx context.Context, filename string, content []byte) error {
	file, err := m.gw.Upload(ctx, ports.FilePart{Field: "file", Filename: filename, Content: content})
	if err != nil {
		m.toasts.Error(domain.FailureMessage(err, "could not upload "+filename))
		return err
	}
	m.cache.Upsert(file)
	m.toasts.Success(filename + " uploaded")
	return nil
}

// Delete removes an asset by filename. Like record deletes, it requires
// the explicit confirmation step; on failure the listing is untouched.
func (m *Media) Delete(ctx context.Context, filename string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := m.gw.DeleteUpload(ctx, filename); err != nil {
		m.toasts.Error(domain.FailureMessage(err, "could not delete "+filename))
		return err
	}
	m.cache.Remove(filename)
	m.toasts.Success(filename + " deleted")
	return nil
}
