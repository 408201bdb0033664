package placeholder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/matzehuels/blogscope/pkg/blog"
	errs "github.com/matzehuels/blogscope/pkg/errors"
	"github.com/matzehuels/blogscope/pkg/httputil"
)

// fakeAPI serves a tiny fixed corpus and records requested paths.
type fakeAPI struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	posts := []blog.Post{
		{ID: 1, UserID: 1, Title: "first", Body: "one"},
		{ID: 2, UserID: 2, Title: "second", Body: "two"},
	}
	users := []blog.User{
		{ID: 1, Name: "Alice", Username: "alice", Company: &blog.Company{Name: "Acme"}},
		{ID: 2, Name: "Bob", Username: "bob"},
	}
	comments := []blog.Comment{
		{ID: 10, PostID: 1, Name: "nice", Email: "c@example.com", Body: "great"},
	}

	routes := map[string]any{
		"/posts":            posts,
		"/posts/1":          posts[0],
		"/posts/1/comments": comments,
		"/users":            users,
		"/users/2":          users[1],
		"/users/1/posts":    posts[:1],
		"/users/1/comments": comments,
		"/comments":         comments,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{}`))
			return
		}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode: %v", err)
		}
	})
}

func (f *fakeAPI) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func newTestClient(t *testing.T) (*Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler(t))
	t.Cleanup(server.Close)

	p := httputil.DefaultPolicy()
	p.Attempts = 1
	c := NewClient(nil, 0).WithBaseURL(server.URL)
	c.WithRetryPolicy(p)
	return c, api
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()
	c, api := newTestClient(t)

	posts, err := c.ListPosts(ctx)
	if err != nil || len(posts) != 2 {
		t.Fatalf("ListPosts() = %v, %v", posts, err)
	}
	users, err := c.ListUsers(ctx)
	if err != nil || len(users) != 2 || users[0].CompanyName() != "Acme" {
		t.Fatalf("ListUsers() = %v, %v", users, err)
	}
	post, err := c.GetPost(ctx, 1)
	if err != nil || post.Title != "first" {
		t.Fatalf("GetPost(1) = %v, %v", post, err)
	}
	user, err := c.GetUser(ctx, 2)
	if err != nil || user.Name != "Bob" {
		t.Fatalf("GetUser(2) = %v, %v", user, err)
	}
	pc, err := c.PostComments(ctx, 1)
	if err != nil || len(pc) != 1 || pc[0].PostID != 1 {
		t.Fatalf("PostComments(1) = %v, %v", pc, err)
	}
	uc, err := c.UserComments(ctx, 1)
	if err != nil || len(uc) != 1 {
		t.Fatalf("UserComments(1) = %v, %v", uc, err)
	}
	up, err := c.UserPosts(ctx, 1)
	if err != nil || len(up) != 1 {
		t.Fatalf("UserPosts(1) = %v, %v", up, err)
	}
	all, err := c.ListComments(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListComments() = %v, %v", all, err)
	}

	want := []string{
		"/posts", "/users", "/posts/1", "/users/2",
		"/posts/1/comments", "/users/1/comments", "/users/1/posts", "/comments",
	}
	got := api.requested()
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestIDsAreNotValidatedLocally(t *testing.T) {
	c, api := newTestClient(t)

	_, err := c.GetPost(context.Background(), -5)
	if !errs.Is(err, errs.ErrCodeHTTPStatus) {
		t.Fatalf("GetPost(-5) error = %v, want HTTP_STATUS", err)
	}
	if got := api.requested(); len(got) != 1 || got[0] != "/posts/-5" {
		t.Errorf("paths = %v, want [/posts/-5]", got)
	}
}

func TestPostTransform(t *testing.T) {
	c, _ := newTestClient(t)
	c.WithPostTransform(func(p blog.Post) blog.Post {
		p.Title = strings.ToUpper(p.Title)
		return p
	})
	ctx := context.Background()

	posts, err := c.ListPosts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if posts[0].Title != "FIRST" || posts[1].Title != "SECOND" {
		t.Errorf("ListPosts() titles = %q, %q", posts[0].Title, posts[1].Title)
	}

	post, err := c.GetPost(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if post.Title != "FIRST" {
		t.Errorf("GetPost() title = %q", post.Title)
	}

	up, err := c.UserPosts(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if up[0].Title != "FIRST" {
		t.Errorf("UserPosts() title = %q", up[0].Title)
	}
}

func TestBaseURL(t *testing.T) {
	c := NewClient(nil, 0)
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	c.WithBaseURL("")
	if c.BaseURL() != DefaultBaseURL {
		t.Error("WithBaseURL(\"\") should keep the current origin")
	}
	c.WithBaseURL("http://localhost:9999/")
	if c.BaseURL() != "http://localhost:9999/" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}
