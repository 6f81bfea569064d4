// Package services contains the two application services of the client core:
// the post service, which owns all traffic to the remote collection resource
// and commits outcomes into the post store, and the auth service, which
// fabricates sessions against a simulated identity endpoint.
package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/annakovaleva/blogview/internal/client/api"
	"github.com/annakovaleva/blogview/internal/client/models"
)

// listTags is the fixed category set assigned to listed posts. The backing
// resource carries no category field.
var listTags = []string{"Technology", "Programming", "Web Development"}

// enrichmentSpread bounds how far in the past a synthesized creation
// timestamp may fall (about 116 days).
const enrichmentSpread = 10_000_000_000 * time.Millisecond

// Enricher synthesizes the display fields the resource does not carry:
// author, creation timestamp, and category. The clock and randomness source
// are injectable so tests get deterministic values.
type Enricher struct {
	now  func() time.Time
	rand func() float64
}

func NewEnricher() *Enricher {
	return &Enricher{now: time.Now, rand: rand.Float64}
}

// ListItem converts a wire item for the list view: a synthetic author derived
// from userId, a pseudo-random creation time within the spread, and a tag
// drawn from the fixed category set.
func (e *Enricher) ListItem(p api.Post) models.Post {
	return models.Post{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		Author:    &models.Author{ID: p.UserID, Name: fmt.Sprintf("User %d", p.UserID)},
		CreatedAt: e.pastTime(),
		Tags:      listTags[int(e.rand()*float64(len(listTags)))%len(listTags)],
	}
}

// SingleItem converts a wire item for the detail view (fixed category).
func (e *Enricher) SingleItem(p api.Post) models.Post {
	return models.Post{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		Author:    &models.Author{ID: p.UserID, Name: fmt.Sprintf("User %d", p.UserID)},
		CreatedAt: e.pastTime(),
		Tags:      "Technology",
	}
}

func (e *Enricher) pastTime() time.Time {
	offset := time.Duration(e.rand() * float64(enrichmentSpread))
	return e.now().Add(-offset)
}
