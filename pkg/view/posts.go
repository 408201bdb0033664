package view

import (
	"slices"
	"strings"

	"github.com/matzehuels/blogscope/pkg/blog"
)

// PostSortKey selects the field posts are ordered by.
type PostSortKey string

const (
	PostByID     PostSortKey = "id"
	PostByTitle  PostSortKey = "title"
	PostByAuthor PostSortKey = "author"
)

// PostSortKeys lists the accepted keys; the first is the default.
var PostSortKeys = []PostSortKey{PostByID, PostByTitle, PostByAuthor}

// ParsePostSortKey parses a post sort key. The empty string means [PostByID].
func ParsePostSortKey(s string) (PostSortKey, error) {
	return parseKey(s, "post sort key", PostSortKeys...)
}

// PostQuery is a free-text filter plus an ordering for posts.
type PostQuery struct {
	Search string
	SortBy PostSortKey
	Order  Order
}

// FilterPosts returns the posts whose title, body or author name contains
// q.Search, ordered by q.SortBy. A blank search keeps every post.
func FilterPosts(posts []blog.Post, users []blog.User, q PostQuery) []blog.Post {
	byID := UsersByID(users)

	out := make([]blog.Post, 0, len(posts))
	if blank(q.Search) {
		out = append(out, posts...)
	} else {
		m := newMatcher(q.Search)
		for _, p := range posts {
			if matchPost(m, p, byID) {
				out = append(out, p)
			}
		}
	}

	sortPosts(out, byID, q.SortBy, q.Order)
	return out
}

func matchPost(m matcher, p blog.Post, users map[int]blog.User) bool {
	if m.matches(p.Title, p.Body) {
		return true
	}
	u, ok := users[p.UserID]
	return ok && m.matches(u.Name)
}

func sortPosts(posts []blog.Post, users map[int]blog.User, key PostSortKey, o Order) {
	switch key {
	case PostByTitle:
		slices.SortStableFunc(posts, func(a, b blog.Post) int {
			return compare(o, strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	case PostByAuthor:
		slices.SortStableFunc(posts, func(a, b blog.Post) int {
			return compare(o, strings.ToLower(AuthorName(a, users)), strings.ToLower(AuthorName(b, users)))
		})
	default:
		slices.SortStableFunc(posts, func(a, b blog.Post) int {
			return compare(o, a.ID, b.ID)
		})
	}
}
