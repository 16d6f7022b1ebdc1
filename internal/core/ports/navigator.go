package ports

// Routes the client layer navigates to. The rendering layer owns what a
// route looks like on screen; this layer only names destinations.
const (
	RouteLogin = "/admin/login"

	RouteProjects     = "/admin/projects"
	RouteServices     = "/admin/services"
	RouteBlog         = "/admin/blog"
	RouteTestimonials = "/admin/testimonials"
)

// Navigator forces a route change. The gateway uses it for the one global
// side effect in this layer: navigation to the login route when the
// backend rejects the credential.
type Navigator interface {
	NavigateTo(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

func (f NavigatorFunc) NavigateTo(route string) { f(route) }
