// Package api is the thin HTTP client for the remote post collection
// resource. The wire shape carries only id/title/body/userId; the service
// layer is responsible for enriching items with display fields.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Post is the wire shape of the collection resource.
type Post struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
	Tags   string `json:"tags,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the resource rooted at baseURL. The timeout is
// the only resilience mechanism: no retries, no backoff.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ListPosts fetches one page via the _page/_limit query convention.
func (c *Client) ListPosts(ctx context.Context, page, limit int) ([]Post, error) {
	q := url.Values{}
	q.Set("_page", strconv.Itoa(page))
	q.Set("_limit", strconv.Itoa(limit))

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/posts?"+q.Encode(), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost submits the post and returns the resource's echo. The echoed id
// is not authoritative; callers assign their own.
func (c *Client) CreatePost(ctx context.Context, post Post) (*Post, error) {
	var created Post
	if err := c.do(ctx, http.MethodPost, "/posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePost(ctx context.Context, id int64, post Post) (*Post, error) {
	var updated Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), post, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
