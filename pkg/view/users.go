package view

import (
	"slices"
	"strings"

	"github.com/matzehuels/blogscope/pkg/blog"
)

// UserSortKey selects the field users are ordered by.
type UserSortKey string

const (
	UserByName     UserSortKey = "name"
	UserByUsername UserSortKey = "username"
	UserByEmail    UserSortKey = "email"
)

// UserSortKeys lists the accepted keys; the first is the default.
var UserSortKeys = []UserSortKey{UserByName, UserByUsername, UserByEmail}

// ParseUserSortKey parses a user sort key. The empty string means [UserByName].
func ParseUserSortKey(s string) (UserSortKey, error) {
	return parseKey(s, "user sort key", UserSortKeys...)
}

// UserQuery is a free-text filter plus an ordering for users.
type UserQuery struct {
	Search string
	SortBy UserSortKey
	Order  Order
}

// FilterUsers returns the users whose name, username, email, phone or website
// contains q.Search, ordered by q.SortBy. Company names are not searched
// here; see [Search]. A blank search keeps every user.
func FilterUsers(users []blog.User, q UserQuery) []blog.User {
	out := make([]blog.User, 0, len(users))
	if blank(q.Search) {
		out = append(out, users...)
	} else {
		m := newMatcher(q.Search)
		for _, u := range users {
			if matchUser(m, u, false) {
				out = append(out, u)
			}
		}
	}

	field := userField(q.SortBy)
	slices.SortStableFunc(out, func(a, b blog.User) int {
		return compare(q.Order, strings.ToLower(field(a)), strings.ToLower(field(b)))
	})
	return out
}

func matchUser(m matcher, u blog.User, withCompany bool) bool {
	if m.matches(u.Name, u.Username, u.Email, u.Phone, u.Website) {
		return true
	}
	return withCompany && u.CompanyName() != "" && m.matches(u.CompanyName())
}

func userField(key UserSortKey) func(blog.User) string {
	switch key {
	case UserByUsername:
		return func(u blog.User) string { return u.Username }
	case UserByEmail:
		return func(u blog.User) string { return u.Email }
	default:
		return func(u blog.User) string { return u.Name }
	}
}
