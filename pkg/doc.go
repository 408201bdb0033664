// Package pkg provides the core libraries for Blogscope.
//
// # Overview
//
// Blogscope reads posts, users and comments from a JSONPlaceholder-style REST
// API and lets you list, sort, filter and search them. The pkg directory is
// organized into four main areas:
//
//  1. [blog], [content] - Domain types and the readable-English post overlay
//  2. [integrations] - The resilient fetch client and the blog API client
//  3. [view], [browse], [loader] - Query layer, screen orchestration and
//     async load state
//  4. [cache], [httputil], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through Blogscope:
//
//	Blog API (HTTP/JSON)
//	         ↓
//	    [integrations] (retry, classify failures, cache)
//	         ↓
//	    [browse] (concurrent fetches per screen)
//	         ↓
//	    [view] (filter + stable sort)
//	         ↓
//	    table / JSON / interactive browser
//
// # Quick Start
//
// Fetch every post and list the ones mentioning "dolor", newest title first:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/blogscope/pkg/browse"
//	    "github.com/matzehuels/blogscope/pkg/integrations/placeholder"
//	    "github.com/matzehuels/blogscope/pkg/view"
//	)
//
//	client := placeholder.NewClient(nil, 0)
//	corpus, err := browse.New(client, nil).Corpus(context.Background(), false)
//	if err != nil {
//	    return err
//	}
//	posts := view.FilterPosts(corpus.Posts, corpus.Users, view.PostQuery{
//	    Search: "dolor",
//	    SortBy: view.PostByTitle,
//	    Order:  view.Desc,
//	})
//
// # Main Packages
//
// [integrations] - Shared fetch client. Every request is a GET with a JSON
// content type; network failures, non-2xx statuses and undecodable bodies are
// all retried up to a ceiling (3 by default) with linear backoff. Terminal
// failures carry one of the codes in [errors].
//
// [view] - Pure filtering and sorting for listings, and cross-entity
// [view.Search]. Filtering is case-insensitive substring matching; sorting is
// stable.
//
// [cache] - Response caches: NullCache, FileCache (XDG cache directory) and
// RedisCache.
//
// [blog]: github.com/matzehuels/blogscope/pkg/blog
// [content]: github.com/matzehuels/blogscope/pkg/content
// [integrations]: github.com/matzehuels/blogscope/pkg/integrations
// [view]: github.com/matzehuels/blogscope/pkg/view
// [view.Search]: github.com/matzehuels/blogscope/pkg/view.Search
// [browse]: github.com/matzehuels/blogscope/pkg/browse
// [loader]: github.com/matzehuels/blogscope/pkg/loader
// [cache]: github.com/matzehuels/blogscope/pkg/cache
// [httputil]: github.com/matzehuels/blogscope/pkg/httputil
// [errors]: github.com/matzehuels/blogscope/pkg/errors
// [observability]: github.com/matzehuels/blogscope/pkg/observability
package pkg
