package stubserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/annakovaleva/blogview/internal/logging"
)

// NewRouter builds the HTTP surface of the stub resource. The client is a
// browser-style consumer, so CORS is wide open.
func NewRouter(log logging.Logger) http.Handler {
	posts := NewCollection()

	r := chi.NewRouter()
	r.Use(RequestID, Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })

	r.Get("/posts", func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "_page", 0)
		limit := queryInt(r, "_limit", 0)
		log.Debug(r.Context(), "list posts", "page", page, "limit", limit, "request_id", RequestIDFrom(r.Context()))
		writeJSON(w, http.StatusOK, posts.Page(page, limit))
	})

	r.Get("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid post id")
			return
		}
		p, ok := posts.Get(id)
		if !ok {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		writeJSON(w, http.StatusOK, p)
	})

	// Writes are acknowledged, echoed, and forgotten. The next read still
	// serves the seed.
	r.Post("/posts", func(w http.ResponseWriter, r *http.Request) {
		var p Post
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		p.ID = posts.NextID()
		writeJSON(w, http.StatusCreated, p)
	})

	r.Put("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid post id")
			return
		}
		if _, ok := posts.Get(id); !ok {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		var p Post
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		p.ID = id
		writeJSON(w, http.StatusOK, p)
	})

	r.Delete("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid post id")
			return
		}
		if _, ok := posts.Get(id); !ok {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		writeJSON(w, http.StatusOK, struct{}{})
	})

	return r
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
