// Package blog defines the records served by the blog REST API.
//
// Posts, users and comments are immutable once fetched. Relationships are
// expressed only through integer foreign keys:
//
//	Post.UserID    → User.ID   (many posts per user)
//	Comment.PostID → Post.ID   (many comments per post)
//
// No referential integrity is enforced locally. A comment may reference a post
// that was never loaded, and a post may reference an unknown user; consumers
// treat such lookups as absent rather than as errors.
package blog

// Post is a blog entry authored by exactly one user.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// User is an author profile with contact and optional organizational metadata.
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Website  string   `json:"website"`
	Address  *Address `json:"address,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

// CompanyName returns the user's company name, or "" when no company is set.
func (u User) CompanyName() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.Name
}

// Address is a postal address with geographic coordinates.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the API serves them (decimal strings).
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company describes the organization a user belongs to.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Comment is unauthenticated feedback attached to exactly one post.
// Name and Email are free text supplied by the commenter.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}
