// Package routes maps storefront URL paths to view names. The table is
// static and pure: no guards, no redirects, no async resolution — matching
// only extracts named parameters and hands them to the view.
package routes

import "strings"

// Match is the outcome of resolving a path: the view to render and the named
// path parameters to forward as props.
type Match struct {
	View   string
	Params map[string]string
}

type route struct {
	view     string
	segments []string
}

// Table holds the registered routes in declaration order.
type Table struct {
	routes []route
}

// New returns the storefront route table.
func New() *Table {
	t := &Table{}

	t.add("home", "/")
	t.add("home", "/home")
	t.add("product", "/product")
	t.add("productDetail", "/product/{route}")
	t.add("cart", "/cart")
	t.add("orderDetail", "/order/detail/{orderNumber}")
	t.add("orderFailed", "/order/failed")
	t.add("orderSearch", "/order/search")

	return t
}

func (t *Table) add(view, pattern string) {
	t.routes = append(t.routes, route{
		view:     view,
		segments: split(pattern),
	})
}

// Match resolves a path against the table. A trailing slash is tolerated.
func (t *Table) Match(path string) (Match, bool) {
	segments := split(path)

	for _, r := range t.routes {
		if params, ok := match(r.segments, segments); ok {
			return Match{View: r.view, Params: params}, true
		}
	}

	return Match{}, false
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if segments[i] == "" {
				return nil, false
			}
			params[strings.Trim(p, "{}")] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}

	return params, true
}
