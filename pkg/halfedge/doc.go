// Package halfedge implements an index-based halfedge mesh.
//
// Vertices, halfedges and faces live in per-kind arenas (List) and refer to
// each other through integer handles, with None standing in for a missing
// reference. Every element record carries a user attribute value (the V, E
// and F type parameters of Mesh) that the core never inspects; structural
// algorithms that create elements take copy or factory callbacks so those
// attributes follow along.
//
// Removal is lazy: edit operators only mark elements unused, and Compact
// drops them and rewrites every handle in one pass. Lists also hand out
// monotonically increasing tags so traversals can mark elements visited
// without clearing state left behind by earlier passes.
//
// A Mesh is not safe for concurrent use. Structural edits must be
// serialized by the caller and must not overlap with reads of the same
// mesh.
package halfedge
