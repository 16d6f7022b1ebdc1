package domain

import "time"

// Resource is implemented by every record the admin console edits. The
// identity is opaque; the backend owns it.
type Resource interface {
	ResourceID() string
}

// Project is a portfolio case study.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary" validate:"required"`
	Body         string    `json:"body"`
	Client       string    `json:"client"`
	URL          string    `json:"url" validate:"omitempty,url"`
	CoverImage   string    `json:"coverImage,omitempty"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (p Project) ResourceID() string { return p.ID }

// Service is an offered service line on the public site.
type Service struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Summary   string    `json:"summary" validate:"required"`
	Icon      string    `json:"icon"`
	Features  []string  `json:"features"`
	Price     string    `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Service) ResourceID() string { return s.ID }

// BlogPost is an article on the public blog.
type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" validate:"required"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Body       string    `json:"body" validate:"required"`
	CoverImage string    `json:"coverImage,omitempty"`
	Tags       []string  `json:"tags"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (b BlogPost) ResourceID() string { return b.ID }

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	ID        string    `json:"id"`
	Author    string    `json:"author" validate:"required"`
	Company   string    `json:"company"`
	Quote     string    `json:"quote" validate:"required"`
	Avatar    string    `json:"avatar,omitempty"`
	Rating    int       `json:"rating" validate:"min=0,max=5"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t Testimonial) ResourceID() string { return t.ID }

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" validate:"required"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c ContactMessage) ResourceID() string { return c.ID }

// Settings is the site-wide singleton edited from the admin console.
type Settings struct {
	SiteTitle    string            `json:"siteTitle"`
	Tagline      string            `json:"tagline"`
	ContactEmail string            `json:"contactEmail"`
	SocialLinks  map[string]string `json:"socialLinks"`
	Analytics    bool              `json:"analytics"`
}

// DefaultSettings is the hard-coded fallback applied when the settings
// fetch fails at startup. The console never runs with absent settings.
func DefaultSettings() Settings {
	return Settings{
		SiteTitle:   "Studio Folio",
		Tagline:     "Design & engineering for small brands",
		SocialLinks: map[string]string{},
	}
}

// Profile is the operator's public bio, a singleton like Settings.
type Profile struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline"`
	Bio      string   `json:"bio"`
	Photo    string   `json:"photo,omitempty"`
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
}

// DefaultProfile is the fallback counterpart of DefaultSettings.
func DefaultProfile() Profile {
	return Profile{Name: "Studio Folio", Skills: []string{}}
}

// MediaFile is an uploaded asset listed in the media manager.
type MediaFile struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m MediaFile) ResourceID() string { return m.Filename }
