// Package routes organizes HTTP route registration into prefixed groups.
package routes

import "net/http"

// Group organizes routes under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Wrap returns a copy of the group with every handler (including children's)
// wrapped by the given middleware. Used to apply a permission guard to an
// entire group without per-route wiring.
func (g Group) Wrap(mw func(http.HandlerFunc) http.HandlerFunc) Group {
	wrapped := Group{Prefix: g.Prefix}

	wrapped.Routes = make([]Route, len(g.Routes))
	for i, route := range g.Routes {
		route.Handler = mw(route.Handler)
		wrapped.Routes[i] = route
	}

	wrapped.Children = make([]Group, len(g.Children))
	for i, child := range g.Children {
		wrapped.Children[i] = child.Wrap(mw)
	}

	return wrapped
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}
