// Package browse composes the endpoint calls behind each screen of the blog
// browser.
//
// Independent fetches run concurrently with [errgroup.Group]. A failing fetch
// does not cancel its siblings; the group waits for all of them and reports
// the first error. Screens that can render without a secondary resource (a
// post whose author lookup fails) tolerate that failure and log it.
package browse

import (
	"context"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/blogscope/pkg/blog"
	"github.com/matzehuels/blogscope/pkg/view"
)

// API is the subset of the placeholder client used here.
type API interface {
	ListPosts(ctx context.Context) ([]blog.Post, error)
	ListUsers(ctx context.Context) ([]blog.User, error)
	ListComments(ctx context.Context) ([]blog.Comment, error)
	GetPost(ctx context.Context, id int) (*blog.Post, error)
	GetUser(ctx context.Context, id int) (*blog.User, error)
	PostComments(ctx context.Context, postID int) ([]blog.Comment, error)
	UserComments(ctx context.Context, userID int) ([]blog.Comment, error)
	UserPosts(ctx context.Context, userID int) ([]blog.Post, error)
}

// Browser loads the data each screen needs.
type Browser struct {
	api    API
	logger *log.Logger
}

// New creates a Browser. A nil logger uses the default logger.
func New(api API, logger *log.Logger) *Browser {
	if logger == nil {
		logger = log.Default()
	}
	return &Browser{api: api, logger: logger}
}

// Corpus fetches all posts and users, and all comments when withComments is
// set. The fetches run concurrently.
func (b *Browser) Corpus(ctx context.Context, withComments bool) (view.Corpus, error) {
	var (
		c view.Corpus
		g errgroup.Group
	)
	g.Go(func() (err error) {
		c.Posts, err = b.api.ListPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		c.Users, err = b.api.ListUsers(ctx)
		return err
	})
	if withComments {
		g.Go(func() (err error) {
			c.Comments, err = b.api.ListComments(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return view.Corpus{}, err
	}
	b.logger.Debug("corpus loaded", "posts", len(c.Posts), "users", len(c.Users), "comments", len(c.Comments))
	return c, nil
}

// PostDetail is a post with its comments and, when resolvable, its author.
type PostDetail struct {
	Post     blog.Post
	Author   *blog.User
	Comments []blog.Comment
}

// PostDetail fetches a post and its comments concurrently, then the post's
// author. A failed author lookup leaves Author nil.
func (b *Browser) PostDetail(ctx context.Context, id int) (*PostDetail, error) {
	var (
		d PostDetail
		g errgroup.Group
	)
	g.Go(func() error {
		p, err := b.api.GetPost(ctx, id)
		if err != nil {
			return err
		}
		d.Post = *p
		return nil
	})
	g.Go(func() (err error) {
		d.Comments, err = b.api.PostComments(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	author, err := b.api.GetUser(ctx, d.Post.UserID)
	if err != nil {
		b.logger.Warn("author unavailable", "post", id, "user", d.Post.UserID, "err", err)
	} else {
		d.Author = author
	}
	return &d, nil
}

// UserDetail is a user with their posts and optionally their comments.
type UserDetail struct {
	User     blog.User
	Posts    []blog.Post
	Comments []blog.Comment
}

// UserDetail fetches a user and their posts concurrently, plus the user's
// comment listing (/users/{id}/comments) when withComments is set.
func (b *Browser) UserDetail(ctx context.Context, id int, withComments bool) (*UserDetail, error) {
	var (
		d UserDetail
		g errgroup.Group
	)
	g.Go(func() error {
		u, err := b.api.GetUser(ctx, id)
		if err != nil {
			return err
		}
		d.User = *u
		return nil
	})
	g.Go(func() (err error) {
		d.Posts, err = b.api.UserPosts(ctx, id)
		return err
	})
	if withComments {
		g.Go(func() (err error) {
			d.Comments, err = b.api.UserComments(ctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Comments fetches the comments of one post.
func (b *Browser) Comments(ctx context.Context, postID int) ([]blog.Comment, error) {
	return b.api.PostComments(ctx, postID)
}

// Users fetches all users.
func (b *Browser) Users(ctx context.Context) ([]blog.User, error) {
	return b.api.ListUsers(ctx)
}
