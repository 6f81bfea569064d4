package models

import "time"

// Author is the display identity attached to a post. The backing resource
// does not carry authors, so this is always synthesized client-side.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post is a user-authored content item. ID is unique within the collection;
// Author, CreatedAt and Tags are enrichment fields absent from the wire shape.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    int64     `json:"userId"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Tags      string    `json:"tags,omitempty"`
}

// DefaultTag is applied whenever a create or update submits empty tags, so a
// stored post never carries an empty category.
const DefaultTag = "General"
