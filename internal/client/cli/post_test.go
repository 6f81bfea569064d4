package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/annakovaleva/blogview/internal/client/api"
	"github.com/annakovaleva/blogview/internal/client/store"
	"github.com/annakovaleva/blogview/internal/common"
)

func newPostServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]api.Post{
			{ID: 1, Title: "Go concurrency patterns", Body: strings.Repeat("a", 30), UserID: 7},
			{ID: 2, Title: "Testing with httptest", Body: strings.Repeat("b", 30), UserID: 7},
		})
	})
	mux.HandleFunc("GET /posts/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Post{ID: 1, Title: "Go concurrency patterns", Body: strings.Repeat("a", 30), UserID: 7})
	})
	mux.HandleFunc("GET /posts/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Post not found"})
	})
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		var p api.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = 101
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	})
	mux.HandleFunc("PUT /posts/1", func(w http.ResponseWriter, r *http.Request) {
		var p api.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		json.NewEncoder(w).Encode(p)
	})
	mux.HandleFunc("DELETE /posts/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, a *App) {
	t.Helper()
	stubInputs(t, []string{"alice@example.org"}, "secret")
	require.NoError(t, a.Login(context.Background()))
}

func TestList_PrintsPosts(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	lines := silencePrint(t)

	require.NoError(t, a.List(context.Background()))

	require.Len(t, a.posts.Posts(), 2)
	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Go concurrency patterns")
	require.Contains(t, joined, "Testing with httptest")
}

func TestView_NotFound(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	lines := silencePrint(t)
	stubInputs(t, []string{"99"}, "")

	require.NoError(t, a.View(context.Background()))

	require.Contains(t, strings.Join(*lines, "\n"), "Post not found")
}

func TestCreate_RequiresSession(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	silencePrint(t)

	err := a.Create(context.Background())

	require.ErrorIs(t, err, common.ErrorNoSession)
	require.Empty(t, a.posts.Posts())
}

func TestCreate_LoggedIn(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	lines := silencePrint(t)
	login(t, a)

	a.reader = bufio.NewReader(strings.NewReader("a body long enough to pass validation\n\n"))
	stubInputs(t, []string{"A fresh post title", "Technology"}, "")

	require.NoError(t, a.Create(context.Background()))

	posts := a.posts.Posts()
	require.Len(t, posts, 1)
	require.Equal(t, "A fresh post title", posts[0].Title)
	// The resource echoes id 101 but the local id is authoritative.
	require.NotEqual(t, int64(101), posts[0].ID)
	require.Contains(t, strings.Join(*lines, "\n"), "Created post")
}

func TestCreate_InvalidFormNeverHitsTheWire(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(t, srv.URL)
	lines := silencePrint(t)
	login(t, a)

	a.reader = bufio.NewReader(strings.NewReader("too short\n\n"))
	stubInputs(t, []string{"abc", ""}, "")

	require.NoError(t, a.Create(context.Background()))

	require.False(t, hit)
	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Title must be at least 5 characters")
	require.Contains(t, joined, "Content must be at least 20 characters")
}

func TestDelete_RemovesFromList(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	silencePrint(t)
	login(t, a)

	require.NoError(t, a.List(context.Background()))
	require.Len(t, a.posts.Posts(), 2)

	stubInputs(t, []string{"1"}, "")
	require.NoError(t, a.Delete(context.Background()))

	require.Len(t, a.posts.Posts(), 1)
	_, ok := a.posts.Find(1)
	require.False(t, ok)
}

func TestEdit_KeepsUnansweredFields(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	silencePrint(t)
	login(t, a)

	require.NoError(t, a.List(context.Background()))

	// Empty title and tags keep the loaded values; only the body changes.
	a.reader = bufio.NewReader(strings.NewReader("a replacement body long enough to pass\n\n"))
	stubInputs(t, []string{"1", "", ""}, "")

	require.NoError(t, a.Edit(context.Background()))

	p, ok := a.posts.Find(1)
	require.True(t, ok)
	require.Equal(t, "Go concurrency patterns", p.Title)
	require.Equal(t, "a replacement body long enough to pass", p.Body)
}

func TestSearchAndFilter(t *testing.T) {
	srv := newPostServer(t)
	a := newTestApp(t, srv.URL)
	lines := silencePrint(t)

	require.NoError(t, a.List(context.Background()))

	stubInputs(t, []string{"httptest", "NoSuchTag"}, "")
	require.NoError(t, a.Search(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Testing with httptest")

	require.NoError(t, a.FilterTag(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "No posts found")
}

func TestToggleTheme(t *testing.T) {
	a := newTestApp(t, "http://unused")
	lines := silencePrint(t)

	require.NoError(t, a.ToggleTheme(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), string(store.ThemeDark))
}
