package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/annakovaleva/blogview/internal/client/api"
	"github.com/annakovaleva/blogview/internal/client/models"
	"github.com/annakovaleva/blogview/internal/client/store"
	"github.com/annakovaleva/blogview/internal/logging"
)

// Fallback messages, used when the resource supplies none.
const (
	msgFetchFailed  = "Failed to fetch posts"
	msgGetFailed    = "Failed to fetch post"
	msgCreateFailed = "Failed to create post"
	msgUpdateFailed = "Failed to update post"
	msgDeleteFailed = "Failed to delete post"
)

// PostService is the only component talking to the remote post resource.
// Every network-backed operation follows the same pattern: clear the error
// slot, raise the loading flag, perform exactly one request, reduce any
// failure to a single message, and lower the loading flag on the way out.
// A failure is terminal for that call; retrying is the caller's business.
type PostService struct {
	api      *api.Client
	posts    *store.PostStore
	sessions *store.SessionStore
	enrich   *Enricher
	log      logging.Logger
	newID    func() int64
}

func NewPostService(apiClient *api.Client, posts *store.PostStore, sessions *store.SessionStore, log logging.Logger) *PostService {
	return &PostService{
		api:      apiClient,
		posts:    posts,
		sessions: sessions,
		enrich:   NewEnricher(),
		log:      log,
		newID:    newIDGenerator(),
	}
}

// List fetches one page, enriches every item, and replaces the whole list.
// On failure the existing list is left untouched and the error slot is set.
func (s *PostService) List(ctx context.Context, page, limit int) {
	s.posts.SetLoading(true)
	s.posts.ClearError()
	defer s.posts.SetLoading(false)

	items, err := s.api.ListPosts(ctx, page, limit)
	if err != nil {
		s.log.Error(ctx, "list posts failed", "page", page, "err", err)
		s.posts.SetError(api.Reduce(err, msgFetchFailed))
		return
	}

	enriched := make([]models.Post, 0, len(items))
	for _, it := range items {
		enriched = append(enriched, s.enrich.ListItem(it))
	}
	s.posts.ReplaceAll(enriched)
}

// Get fetches a single post and makes it the currently viewed one.
// Returns nil on failure; the message lands in the error slot.
func (s *PostService) Get(ctx context.Context, id int64) *models.Post {
	s.posts.SetLoading(true)
	s.posts.ClearError()
	defer s.posts.SetLoading(false)

	item, err := s.api.GetPost(ctx, id)
	if err != nil {
		s.log.Error(ctx, "get post failed", "id", id, "err", err)
		s.posts.SetError(api.Reduce(err, msgGetFailed))
		return nil
	}

	post := s.enrich.SingleItem(*item)
	s.posts.SetCurrent(&post)
	return &post
}

// Create submits the form and prepends the resulting post. The resource's
// echoed id is ignored: a fresh local id is assigned, since the backend is
// not authoritative and reusing its id would collide.
func (s *PostService) Create(ctx context.Context, form models.PostForm) models.Result[models.Post] {
	s.posts.SetLoading(true)
	s.posts.ClearError()
	defer s.posts.SetLoading(false)

	author := s.currentAuthor()
	_, err := s.api.CreatePost(ctx, api.Post{
		Title:  form.Title,
		Body:   form.Body,
		Tags:   form.Tags,
		UserID: author.ID,
	})
	if err != nil {
		s.log.Error(ctx, "create post failed", "err", err)
		msg := api.Reduce(err, msgCreateFailed)
		s.posts.SetError(msg)
		return models.Err[models.Post](msg)
	}

	post := models.Post{
		ID:        s.newID(),
		Title:     form.Title,
		Body:      form.Body,
		UserID:    author.ID,
		Author:    &author,
		CreatedAt: time.Now(),
		Tags:      defaultTags(form.Tags),
	}
	s.posts.Append(post)
	return models.Ok(post)
}

// Update submits the full replacement. The original creation time is
// preserved when the post is still in the in-memory list; otherwise the
// rebuilt post is stamped with the current time.
func (s *PostService) Update(ctx context.Context, id int64, form models.PostForm) models.Result[models.Post] {
	s.posts.SetLoading(true)
	s.posts.ClearError()
	defer s.posts.SetLoading(false)

	author := s.currentAuthor()
	_, err := s.api.UpdatePost(ctx, id, api.Post{
		ID:     id,
		Title:  form.Title,
		Body:   form.Body,
		Tags:   form.Tags,
		UserID: author.ID,
	})
	if err != nil {
		s.log.Error(ctx, "update post failed", "id", id, "err", err)
		msg := api.Reduce(err, msgUpdateFailed)
		s.posts.SetError(msg)
		return models.Err[models.Post](msg)
	}

	createdAt := time.Now()
	if existing, ok := s.posts.Find(id); ok {
		createdAt = existing.CreatedAt
	}

	post := models.Post{
		ID:        id,
		Title:     form.Title,
		Body:      form.Body,
		UserID:    author.ID,
		Author:    &author,
		CreatedAt: createdAt,
		Tags:      defaultTags(form.Tags),
	}
	s.posts.ReplaceOne(post)
	return models.Ok(post)
}

// Delete issues the remote delete and removes the post from the list.
// On failure the list is left untouched.
func (s *PostService) Delete(ctx context.Context, id int64) models.Result[int64] {
	s.posts.SetLoading(true)
	s.posts.ClearError()
	defer s.posts.SetLoading(false)

	if err := s.api.DeletePost(ctx, id); err != nil {
		s.log.Error(ctx, "delete post failed", "id", id, "err", err)
		msg := api.Reduce(err, msgDeleteFailed)
		s.posts.SetError(msg)
		return models.Err[int64](msg)
	}

	s.posts.RemoveOne(id)
	return models.Ok(id)
}

// Search is a pure, case-insensitive substring match over title and body of
// the current in-memory list. A blank query returns the full list.
func (s *PostService) Search(query string) []models.Post {
	posts := s.posts.Posts()
	if strings.TrimSpace(query) == "" {
		return posts
	}

	q := strings.ToLower(query)
	matched := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Body), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByTag is a pure exact-match filter. An empty tag returns the full list.
func (s *PostService) FilterByTag(tag string) []models.Post {
	posts := s.posts.Posts()
	if tag == "" {
		return posts
	}

	matched := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Tags == tag {
			matched = append(matched, p)
		}
	}
	return matched
}

// currentAuthor stamps posts with the session user, falling back to a
// placeholder identity when no session is active.
func (s *PostService) currentAuthor() models.Author {
	if u := s.sessions.User(); u != nil {
		return models.Author{ID: u.ID, Name: u.Name}
	}
	return models.Author{ID: 1, Name: "Current User"}
}

func defaultTags(tags string) string {
	if tags == "" {
		return models.DefaultTag
	}
	return tags
}

// newIDGenerator returns a wall-clock-derived id source that bumps
// monotonically when two ids land on the same millisecond.
func newIDGenerator() func() int64 {
	var mu sync.Mutex
	var last int64
	return func() int64 {
		mu.Lock()
		defer mu.Unlock()
		id := time.Now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		last = id
		return id
	}
}
