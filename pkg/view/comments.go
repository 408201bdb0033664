package view

import (
	"slices"
	"strings"

	"github.com/matzehuels/blogscope/pkg/blog"
)

// CommentSortKey selects the field comments are ordered by.
type CommentSortKey string

const (
	CommentByID    CommentSortKey = "id"
	CommentByName  CommentSortKey = "name"
	CommentByEmail CommentSortKey = "email"
)

// CommentSortKeys lists the accepted keys; the first is the default.
var CommentSortKeys = []CommentSortKey{CommentByID, CommentByName, CommentByEmail}

// ParseCommentSortKey parses a comment sort key. The empty string means
// [CommentByID].
func ParseCommentSortKey(s string) (CommentSortKey, error) {
	return parseKey(s, "comment sort key", CommentSortKeys...)
}

// CommentQuery is a free-text filter plus an ordering for comments.
type CommentQuery struct {
	Search string
	SortBy CommentSortKey
	Order  Order
}

// FilterComments returns the comments matching q.Search on their own name,
// body and email, on the related post's title, or on that post's author
// name. A blank search keeps every comment.
func FilterComments(comments []blog.Comment, posts []blog.Post, users []blog.User, q CommentQuery) []blog.Comment {
	out := make([]blog.Comment, 0, len(comments))
	if blank(q.Search) {
		out = append(out, comments...)
	} else {
		postsByID, usersByID := PostsByID(posts), UsersByID(users)
		m := newMatcher(q.Search)
		for _, c := range comments {
			if matchComment(m, c, postsByID, usersByID) {
				out = append(out, c)
			}
		}
	}

	switch q.SortBy {
	case CommentByName:
		slices.SortStableFunc(out, func(a, b blog.Comment) int {
			return compare(q.Order, strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case CommentByEmail:
		slices.SortStableFunc(out, func(a, b blog.Comment) int {
			return compare(q.Order, strings.ToLower(a.Email), strings.ToLower(b.Email))
		})
	default:
		slices.SortStableFunc(out, func(a, b blog.Comment) int {
			return compare(q.Order, a.ID, b.ID)
		})
	}
	return out
}

func matchComment(m matcher, c blog.Comment, posts map[int]blog.Post, users map[int]blog.User) bool {
	if m.matches(c.Name, c.Body, c.Email) {
		return true
	}
	p, ok := posts[c.PostID]
	if !ok {
		return false
	}
	if m.matches(p.Title) {
		return true
	}
	u, ok := users[p.UserID]
	return ok && m.matches(u.Name)
}
