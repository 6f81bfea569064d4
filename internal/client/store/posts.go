package store

import (
	"sync"

	"github.com/annakovaleva/blogview/internal/client/models"
)

// PostStore holds the fetched post list and per-request view state. It never
// performs network access; the post service commits results here. All
// operations are synchronous and total. The list and the currently viewed
// post are independent: clearing one never touches the other.
type PostStore struct {
	mu      sync.Mutex
	posts   []models.Post
	current *models.Post
	loading bool
	err     string
}

func NewPostStore() *PostStore {
	return &PostStore{}
}

// ReplaceAll swaps in a new list, newest-first order as given.
func (s *PostStore) ReplaceAll(posts []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = make([]models.Post, len(posts))
	copy(s.posts, posts)
}

// SetCurrent sets (or clears, with nil) the currently viewed post.
func (s *PostStore) SetCurrent(post *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post == nil {
		s.current = nil
		return
	}
	p := *post
	s.current = &p
}

// Append prepends the post: the list stays newest first.
func (s *PostStore) Append(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
}

// ReplaceOne swaps the post with a matching id. Absent id is a no-op.
func (s *PostStore) ReplaceOne(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			return
		}
	}
}

// RemoveOne filters out the post with the given id. Absent id is a no-op.
func (s *PostStore) RemoveOne(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept
}

// Find returns a copy of the post with the given id, if present.
func (s *PostStore) Find(id int64) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

func (s *PostStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *PostStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

func (s *PostStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Posts returns a copy of the current list.
func (s *PostStore) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Current returns a copy of the currently viewed post, or nil.
func (s *PostStore) Current() *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

func (s *PostStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current error-slot message, empty when none.
func (s *PostStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
