// Package view derives filtered, sorted and searched projections of loaded
// posts, users and comments.
//
// Everything here is a pure function of its arguments: inputs are never
// mutated, cross-entity lookups use ID maps rebuilt on each call, and the
// result slices are freshly allocated. Each call is one O(n) filter pass plus
// an O(n log n) stable sort, cheap enough to rerun on every keystroke.
//
// # Listing vs. Search
//
// The listing functions ([FilterPosts], [FilterUsers], [FilterComments]) treat
// a blank query as "no filter" and return the whole collection. [Search]
// treats a blank query as "nothing searched yet" and returns empty results
// for every kind. Callers rely on that difference to show a placeholder
// before the first search.
//
// # Unresolved References
//
// A post whose author is not among the loaded users, or a comment whose post
// is not loaded, is never an error. The missing entity simply contributes no
// searchable text and sorts with an empty author name.
package view
