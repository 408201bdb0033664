package placeholder

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/blogscope/pkg/blog"
	"github.com/matzehuels/blogscope/pkg/cache"
	"github.com/matzehuels/blogscope/pkg/integrations"
)

// DefaultBaseURL is the public JSONPlaceholder origin.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Client fetches posts, users and comments from a JSONPlaceholder-compatible API.
type Client struct {
	*integrations.Client
	baseURL   string
	transform func(blog.Post) blog.Post
}

// NewClient creates a client for [DefaultBaseURL]. Responses are cached in c
// for ttl; pass nil to disable caching.
func NewClient(c cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(c, "placeholder:", ttl, nil),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another origin.
func (c *Client) WithBaseURL(u string) *Client {
	if u != "" {
		c.baseURL = u
	}
	return c
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// WithPostTransform sets a function applied to every post this client returns.
func (c *Client) WithPostTransform(fn func(blog.Post) blog.Post) *Client {
	c.transform = fn
	return c
}

func (c *Client) ListPosts(ctx context.Context) ([]blog.Post, error) {
	return c.posts(ctx, "/posts")
}

func (c *Client) ListUsers(ctx context.Context) ([]blog.User, error) {
	var users []blog.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListComments(ctx context.Context) ([]blog.Comment, error) {
	return c.comments(ctx, "/comments")
}

func (c *Client) GetPost(ctx context.Context, id int) (*blog.Post, error) {
	var p blog.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", id), &p); err != nil {
		return nil, err
	}
	p = c.apply(p)
	return &p, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*blog.User, error) {
	var u blog.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) PostComments(ctx context.Context, postID int) ([]blog.Comment, error) {
	return c.comments(ctx, fmt.Sprintf("/posts/%d/comments", postID))
}

func (c *Client) UserComments(ctx context.Context, userID int) ([]blog.Comment, error) {
	return c.comments(ctx, fmt.Sprintf("/users/%d/comments", userID))
}

func (c *Client) UserPosts(ctx context.Context, userID int) ([]blog.Post, error) {
	return c.posts(ctx, fmt.Sprintf("/users/%d/posts", userID))
}

func (c *Client) posts(ctx context.Context, path string) ([]blog.Post, error) {
	var posts []blog.Post
	if err := c.get(ctx, path, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i] = c.apply(posts[i])
	}
	return posts, nil
}

func (c *Client) comments(ctx context.Context, path string) ([]blog.Comment, error) {
	var comments []blog.Comment
	if err := c.get(ctx, path, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	return c.FetchResource(ctx, integrations.JoinURL(c.baseURL, path), v)
}

func (c *Client) apply(p blog.Post) blog.Post {
	if c.transform == nil {
		return p
	}
	return c.transform(p)
}
