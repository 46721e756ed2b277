package state

// Graph is a bipartite relation between U and V values, indexed in both
// directions. Empty adjacency sets are dropped so Len reflects live vertices.
type Graph[U, V comparable] struct {
	uv map[U]map[V]struct{}
	vu map[V]map[U]struct{}
}

// NewGraph returns an empty relation.
func NewGraph[U, V comparable]() *Graph[U, V] {
	return &Graph[U, V]{
		uv: make(map[U]map[V]struct{}),
		vu: make(map[V]map[U]struct{}),
	}
}

// Add relates u and v. Adding an existing edge is a no-op.
func (g *Graph[U, V]) Add(u U, v V) {
	vs, ok := g.uv[u]
	if !ok {
		vs = make(map[V]struct{})
		g.uv[u] = vs
	}
	vs[v] = struct{}{}
	us, ok := g.vu[v]
	if !ok {
		us = make(map[U]struct{})
		g.vu[v] = us
	}
	us[u] = struct{}{}
}

// Has reports whether u and v are related.
func (g *Graph[U, V]) Has(u U, v V) bool {
	_, ok := g.uv[u][v]
	return ok
}

// RemoveU drops every edge touching u.
func (g *Graph[U, V]) RemoveU(u U) {
	for v := range g.uv[u] {
		us := g.vu[v]
		delete(us, u)
		if len(us) == 0 {
			delete(g.vu, v)
		}
	}
	delete(g.uv, u)
}

// RemoveV drops every edge touching v.
func (g *Graph[U, V]) RemoveV(v V) {
	for u := range g.vu[v] {
		vs := g.uv[u]
		delete(vs, v)
		if len(vs) == 0 {
			delete(g.uv, u)
		}
	}
	delete(g.vu, v)
}

// Vs calls fn for each v related to u.
func (g *Graph[U, V]) Vs(u U, fn func(V)) {
	for v := range g.uv[u] {
		fn(v)
	}
}

// Us calls fn for each u related to v.
func (g *Graph[U, V]) Us(v V, fn func(U)) {
	for u := range g.vu[v] {
		fn(u)
	}
}

// Edges returns the total number of edges.
func (g *Graph[U, V]) Edges() int {
	n := 0
	for _, vs := range g.uv {
		n += len(vs)
	}
	return n
}
