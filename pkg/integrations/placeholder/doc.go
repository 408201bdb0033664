// Package placeholder provides a client for the JSONPlaceholder blog API.
//
// # Overview
//
// JSONPlaceholder (https://jsonplaceholder.typicode.com) serves a fixed corpus
// of 100 posts, 10 users and 500 comments. This package maps each resource
// endpoint onto a typed method:
//
//	GET /posts                 ListPosts
//	GET /posts/{id}            GetPost
//	GET /posts/{id}/comments   PostComments
//	GET /users                 ListUsers
//	GET /users/{id}            GetUser
//	GET /users/{id}/posts      UserPosts
//	GET /users/{id}/comments   UserComments
//	GET /comments              ListComments
//
// Methods are pure pass-throughs to [integrations.Client.FetchResource], which
// supplies retry, error classification and optional response caching. IDs are
// written into paths as given; no range check is done locally, so an unknown
// ID surfaces as an HTTP status error from the server.
//
// # Usage
//
//	client := placeholder.NewClient(nil, 0).WithPostTransform(content.English)
//	posts, err := client.ListPosts(ctx)
//
// [integrations.Client.FetchResource]: github.com/matzehuels/blogscope/pkg/integrations.Client.FetchResource
package placeholder
