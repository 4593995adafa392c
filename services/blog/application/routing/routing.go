// Package routing holds the blog routing table. The table is fixed at build
// time; Resolve and the HTTP registration in package api both read it, so the
// resolver and the served surface cannot drift.
package routing

import (
	"net/http"
	"strings"
)

// Action names a controller action. Actions double as the names the auth
// gate authorizes.
type Action string

const (
	ActionIndex   Action = "index"
	ActionShow    Action = "show"
	ActionNew     Action = "new"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// PublicActions are the actions anonymous callers may perform.
var PublicActions = []string{string(ActionIndex), string(ActionShow)}

// Params holds path parameters captured by a route, keyed by name.
type Params map[string]string

// Route is one entry of the routing table. Pattern segments starting with
// ':' capture a single non-empty path segment.
type Route struct {
	Methods []string
	Pattern string
	Action  Action
}

var table = []Route{
	{Methods: []string{http.MethodGet}, Pattern: "/", Action: ActionIndex},
	{Methods: []string{http.MethodGet}, Pattern: "/blogs", Action: ActionIndex},
	{Methods: []string{http.MethodGet}, Pattern: "/blogs/new", Action: ActionNew},
	{Methods: []string{http.MethodPost}, Pattern: "/blogs", Action: ActionCreate},
	{Methods: []string{http.MethodGet}, Pattern: "/blogs/:id", Action: ActionShow},
	{Methods: []string{http.MethodGet}, Pattern: "/blogs/:id/edit", Action: ActionEdit},
	{Methods: []string{http.MethodPatch, http.MethodPut}, Pattern: "/blogs/:id", Action: ActionUpdate},
	{Methods: []string{http.MethodDelete}, Pattern: "/blogs/:id", Action: ActionDestroy},
}

// Routes returns a copy of the table in match order.
func Routes() []Route {
	out := make([]Route, len(table))
	for i, r := range table {
		r.Methods = append([]string(nil), r.Methods...)
		out[i] = r
	}
	return out
}

// Resolve maps a request method and path to an action. The first matching
// entry wins. A single trailing slash is ignored. ok is false when no entry
// matches the method and path.
func Resolve(method, path string) (Action, Params, bool) {
	segs, ok := splitPath(path)
	if !ok {
		return "", nil, false
	}
	for _, r := range table {
		if !hasMethod(r.Methods, method) {
			continue
		}
		if params, ok := match(r.Pattern, segs); ok {
			return r.Action, params, true
		}
	}
	return "", nil, false
}

// ChiPattern rewrites a table pattern into chi syntax ("/blogs/:id" becomes
// "/blogs/{id}").
func ChiPattern(pattern string) string {
	parts := strings.Split(pattern, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + p[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}

func splitPath(path string) ([]string, bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	if path == "/" {
		return nil, true
	}
	return strings.Split(path[1:], "/"), true
}

func match(pattern string, segs []string) (Params, bool) {
	want, _ := splitPath(pattern)
	if len(want) != len(segs) {
		return nil, false
	}
	var params Params
	for i, w := range want {
		if strings.HasPrefix(w, ":") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = Params{}
			}
			params[w[1:]] = segs[i]
			continue
		}
		if w != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func hasMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}
