package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

type stubMediaGW struct {
	files     []domain.MediaFile
	deleteErr error
	deleted   []string
}

func (s *stubMediaGW) Upload(_ context.Context, file ports.FilePart) (domain.MediaFile, error) {
	saved := domain.MediaFile{Filename: file.Filename, URL: "/media/" + file.Filename, Size: int64(len(file.Content))}
	s.files = append(s.files, saved)
	return saved, nil
}

func (s *stubMediaGW) ListUploads(_ context.Context) ([]domain.MediaFile, error) {
	return s.files, nil
}

func (s *stubMediaGW) DeleteUpload(_ context.Context, filename string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, filename)
	return nil
}

func TestMedia_UploadInsertsIntoListing(t *testing.T) {
	m := NewMedia(&stubMediaGW{}, NewToasts(0, nil), zerolog.Nop())

	if err := m.Upload(context.Background(), "hero.png", []byte{1, 2}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	got, ok := m.Cache().Get("hero.png")
	if !ok || got.URL != "/media/hero.png" {
		t.Fatalf("uploaded file not in cache: %+v", got)
	}
}

func TestMedia_DeleteRequiresConfirmation(t *testing.T) {
	gw := &stubMediaGW{files: []domain.MediaFile{{Filename: "a.png"}}}
	m := NewMedia(gw, NewToasts(0, nil), zerolog.Nop())
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if err := m.Delete(context.Background(), "a.png", false); !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if len(gw.deleted) != 0 {
		t.Fatalf("unconfirmed delete must not reach the network")
	}

	if err := m.Delete(context.Background(), "a.png", true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m.Cache().Len() != 0 {
		t.Fatalf("expected listing reconciled after delete")
	}
}
