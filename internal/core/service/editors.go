package service

import (
	"github.com/rs/zerolog"

	"github.com/studiofolio/site-console/internal/core/domain"
	"github.com/studiofolio/site-console/internal/core/ports"
)

// Concrete editor wiring for the four admin resource kinds. Each is just
// an EditorSpec; the behavior lives once in Editor.

func NewProjectEditor(gw ports.ResourceGateway, nav ports.Navigator, toasts *Toasts, log zerolog.Logger) *Editor[domain.Project] {
	return NewEditor(EditorSpec[domain.Project]{
		Kind:       "project",
		Route:      "projects",
		ListRoute:  ports.RouteProjects,
		Defaults:   func() domain.Project { return domain.Project{Technologies: []string{}} },
		FileFields: []string{"coverImage"},
		SetBool: func(rec *domain.Project, field string, value bool) bool {
			if field == "featured" {
				rec.Featured = value
				return true
			}
			return false
		},
	}, gw, nav, toasts, log)
}

func NewServiceEditor(gw ports.ResourceGateway, nav ports.Navigator, toasts *Toasts, log zerolog.Logger) *Editor[domain.Service] {
	return NewEditor(EditorSpec[domain.Service]{
		Kind:      "service",
		Route:     "services",
		ListRoute: ports.RouteServices,
		Defaults:  func() domain.Service { return domain.Service{Features: []string{}, Active: true} },
		SetBool: func(rec *domain.Service, field string, value bool) bool {
			if field == "active" {
				rec.Active = value
				return true
			}
			return false
		},
	}, gw, nav, toasts, log)
}

func NewBlogEditor(gw ports.ResourceGateway, nav ports.Navigator, toasts *Toasts, log zerolog.Logger) *Editor[domain.BlogPost] {
	return NewEditor(EditorSpec[domain.BlogPost]{
		Kind:       "blog post",
		Route:      "blog",
		ListRoute:  ports.RouteBlog,
		Defaults:   func() domain.BlogPost { return domain.BlogPost{Tags: []string{}} },
		FileFields: []string{"coverImage"},
		SetBool: func(rec *domain.BlogPost, field string, value bool) bool {
			if field == "published" {
				rec.Published = value
				return true
			}
			return false
		},
	}, gw, nav, toasts, log)
}

func NewTestimonialEditor(gw ports.ResourceGateway, nav ports.Navigator, toasts *Toasts, log zerolog.Logger) *Editor[domain.Testimonial] {
	return NewEditor(EditorSpec[domain.Testimonial]{
		Kind:       "testimonial",
		Route:      "testimonials",
		ListRoute:  ports.RouteTestimonials,
		Defaults:   func() domain.Testimonial { return domain.Testimonial{Rating: 5, Visible: true} },
		FileFields: []string{"avatar"},
		SetBool: func(rec *domain.Testimonial, field string, value bool) bool {
			if field == "visible" {
				rec.Visible = value
				return true
			}
			return false
		},
	}, gw, nav, toasts, log)
}
