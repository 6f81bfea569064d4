package models

import "strings"

// PostForm is the raw form input for creating or updating a post.
type PostForm struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tags  string `json:"tags"`
}

// Validation bounds for post forms.
const (
	TitleMinLen = 5
	TitleMaxLen = 100
	BodyMinLen  = 20
)

// Validate checks the form and returns field-scoped error messages.
// An empty map means the input is valid. Validation is local and resolved
// before any network call is attempted.
func (f PostForm) Validate() map[string]string {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(f.Title) == "":
		errs["title"] = "Title is required"
	case len(f.Title) < TitleMinLen:
		errs["title"] = "Title must be at least 5 characters"
	case len(f.Title) > TitleMaxLen:
		errs["title"] = "Title must not exceed 100 characters"
	}

	switch {
	case strings.TrimSpace(f.Body) == "":
		errs["body"] = "Content is required"
	case len(f.Body) < BodyMinLen:
		errs["body"] = "Content must be at least 20 characters"
	}

	if strings.TrimSpace(f.Tags) == "" {
		errs["tags"] = "Please select a category"
	}

	return errs
}
