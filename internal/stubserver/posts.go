// Package stubserver is a stand-in for the remote post resource. It mimics
// a public placeholder API: reads come from a fixed seed, writes are
// acknowledged and echoed back but never persisted, and the next free id is
// reported as if the write had happened.
package stubserver

import (
	"fmt"
	"strings"
)

// Post is the wire shape served by the stub resource.
type Post struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
	Tags   string `json:"tags,omitempty"`
}

// seedSize is the number of posts the resource pretends to hold.
const seedSize = 100

// Seed builds the fixed post collection. The content is deterministic so
// repeated runs and tests see the same data.
func Seed() []Post {
	titles := []string{
		"Getting started with structured concurrency",
		"Error handling beyond the happy path",
		"A field guide to HTTP caching",
		"Designing pagination that survives growth",
		"What profiling told us about our allocator",
	}
	posts := make([]Post, 0, seedSize)
	for i := 1; i <= seedSize; i++ {
		posts = append(posts, Post{
			ID:     int64(i),
			Title:  fmt.Sprintf("%s (part %d)", titles[(i-1)%len(titles)], (i-1)/len(titles)+1),
			Body:   strings.Repeat(fmt.Sprintf("Entry %d of the seeded corpus. ", i), 3),
			UserID: int64((i-1)%10 + 1),
		})
	}
	return posts
}

// Collection serves reads over the seed and computes ids for fake writes.
// It holds no mutable state: writes never change what subsequent reads see.
type Collection struct {
	posts []Post
}

func NewCollection() *Collection {
	return &Collection{posts: Seed()}
}

// Page returns one page of posts. page is 1-based; limit <= 0 returns the
// whole collection, matching the behavior of the public placeholder API.
func (c *Collection) Page(page, limit int) []Post {
	if limit <= 0 {
		out := make([]Post, len(c.posts))
		copy(out, c.posts)
		return out
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(c.posts) {
		return []Post{}
	}
	end := start + limit
	if end > len(c.posts) {
		end = len(c.posts)
	}
	out := make([]Post, end-start)
	copy(out, c.posts[start:end])
	return out
}

// Get returns the post with the given id, or false when it does not exist.
func (c *Collection) Get(id int64) (Post, bool) {
	for _, p := range c.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// NextID is the id a created post would get, were creation real.
func (c *Collection) NextID() int64 {
	var max int64
	for _, p := range c.posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
