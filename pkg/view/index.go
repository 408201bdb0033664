package view

import "github.com/matzehuels/blogscope/pkg/blog"

// UsersByID indexes users by ID. Later duplicates win.
func UsersByID(users []blog.User) map[int]blog.User {
	m := make(map[int]blog.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}

// PostsByID indexes posts by ID. Later duplicates win.
func PostsByID(posts []blog.Post) map[int]blog.Post {
	m := make(map[int]blog.Post, len(posts))
	for _, p := range posts {
		m[p.ID] = p
	}
	return m
}

// AuthorName returns the display name of the post's author, or "" when the
// author is not in users.
func AuthorName(p blog.Post, users map[int]blog.User) string {
	if u, ok := users[p.UserID]; ok {
		return u.Name
	}
	return ""
}
