package ports

import (
	"context"
	"encoding/json"

	"github.com/studiofolio/site-console/internal/core/domain"
)

// FilePart is a file staged for a multipart submit.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// Payload carries a working copy to the gateway for create/update calls.
//
// Body is serialized as JSON. Files are staged uploads; their presence
// switches the request to multipart. Clear lists file fields the user
// explicitly emptied, sent to the backend as an empty value so it clears
// the stored file. Omit lists file fields the user did not touch; they are
// stripped from the payload entirely so the backend leaves them alone.
// Clearing and omitting are different backend instructions and are kept
// apart all the way to the wire.
type Payload struct {
	Body  any
	Files []FilePart
	Clear []string
	Omit  []string
}

// AuthGateway covers the authentication endpoints.
type AuthGateway interface {
	// Login exchanges credentials for a token and user record. A success
	// envelope missing either is a malformed response, not a partial login.
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Me(ctx context.Context) (*domain.User, error)
}

// ResourceGateway covers the uniform CRUD surface shared by projects,
// services, blog posts, and testimonials. Records travel as raw JSON so
// the one generic editor can decode into its own type; the gateway stays
// the single point that understands the response envelope.
type ResourceGateway interface {
	List(ctx context.Context, route string) (json.RawMessage, error)
	Get(ctx context.Context, route, id string) (json.RawMessage, error)
	Create(ctx context.Context, route string, payload Payload) (json.RawMessage, error)
	Update(ctx context.Context, route, id string, payload Payload) (json.RawMessage, error)
	Delete(ctx context.Context, route, id string) error
	// Toggle sends only the changed boolean field (the fast path that must
	// not force a list reload).
	Toggle(ctx context.Context, route, id, field string, value bool) (json.RawMessage, error)
}

// ContactGateway covers the contact-message endpoints.
type ContactGateway interface {
	SubmitContact(ctx context.Context, msg domain.ContactMessage) error
	ListContact(ctx context.Context) ([]domain.ContactMessage, error)
	MarkContactRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
}

// SiteGateway covers the settings and profile singletons.
type SiteGateway interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)
	GetProfile(ctx context.Context) (domain.Profile, error)
	// UpdateProfile goes multipart when a photo is staged.
	UpdateProfile(ctx context.Context, payload Payload) (domain.Profile, error)
}

// MediaGateway covers the upload endpoints.
type MediaGateway interface {
	Upload(ctx context.Context, file FilePart) (domain.MediaFile, error)
	ListUploads(ctx context.Context) ([]domain.MediaFile, error)
	DeleteUpload(ctx context.Context, filename string) error
}
