package view

import (
	"strings"

	"github.com/matzehuels/blogscope/pkg/blog"
)

// Kind restricts which entity kinds [Search] returns.
type Kind string

const (
	KindAll      Kind = "all"
	KindPosts    Kind = "posts"
	KindUsers    Kind = "users"
	KindComments Kind = "comments"
)

// ParseKind parses a search kind. The empty string means [KindAll].
// "blogs" is accepted as an alias for [KindPosts].
func ParseKind(s string) (Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "blogs") {
		return KindPosts, nil
	}
	return parseKey(s, "search type", KindAll, KindPosts, KindUsers, KindComments)
}

// Corpus is the full set of loaded collections.
type Corpus struct {
	Posts    []blog.Post
	Users    []blog.User
	Comments []blog.Comment
}

// Results holds the matches of a [Search], each in corpus order.
type Results struct {
	Posts    []blog.Post
	Users    []blog.User
	Comments []blog.Comment
}

// Len returns the total number of matches.
func (r Results) Len() int {
	return len(r.Posts) + len(r.Users) + len(r.Comments)
}

// Search finds posts, users and comments matching query. Unlike the listing
// filters, a blank query yields no results at all. Users also match on
// company name. Kinds other than kind are left empty.
func Search(c Corpus, query string, kind Kind) Results {
	var r Results
	if blank(query) {
		return r
	}
	if kind == "" {
		kind = KindAll
	}

	m := newMatcher(query)
	postsByID, usersByID := PostsByID(c.Posts), UsersByID(c.Users)

	if kind == KindAll || kind == KindPosts {
		for _, p := range c.Posts {
			if matchPost(m, p, usersByID) {
				r.Posts = append(r.Posts, p)
			}
		}
	}
	if kind == KindAll || kind == KindUsers {
		for _, u := range c.Users {
			if matchUser(m, u, true) {
				r.Users = append(r.Users, u)
			}
		}
	}
	if kind == KindAll || kind == KindComments {
		for _, cm := range c.Comments {
			if matchComment(m, cm, postsByID, usersByID) {
				r.Comments = append(r.Comments, cm)
			}
		}
	}
	return r
}
