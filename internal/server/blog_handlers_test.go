package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBlog(t *testing.T, app *fiber.App, tok, title, content string) float64 {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/blog/", tok, map[string]string{
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id, ok := body["blogId"].(float64)
	require.True(t, ok, "create response must contain blogId")
	return id
}

func TestCreateBlog(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "author", "author@example.com", "password123")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/blog/", tok, map[string]string{
		"title":   "First Post",
		"content": "Hello world",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Blog created successfully", body["msg"])
	assert.NotNil(t, body["blogId"])
}

func TestCreateBlog_EmptyTitle(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "author", "author@example.com", "password123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/blog/", tok, map[string]string{
		"title":   "",
		"content": "Hello world",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateBlog_Unauthenticated(t *testing.T) {
	_, app := newTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/blog/", "", map[string]string{
		"title":   "First Post",
		"content": "Hello world",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized User", body["msg"])
}

func TestCreateBlog_AuthorFromToken(t *testing.T) {
	s, app := newTestServer(t)
	tok := signupUser(t, app, "author", "author@example.com", "password123")

	id := createBlog(t, app, tok, "Owned", "by the token identity")

	post, err := s.blogService.GetBlog(t.Context(), uint(id))
	require.NoError(t, err)

	claims, err := s.tokens.Verify(tok)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, post.AuthorID)
}

func TestGetBlog(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "reader", "reader@example.com", "password123")
	id := createBlog(t, app, tok, "Findable", "content here")

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/blog/%d", uint(id)), tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Blog found", body["msg"])

	blog, ok := body["blog"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Findable", blog["title"])
	assert.Equal(t, "content here", blog["content"])
}

func TestGetBlog_NotFound(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "reader", "reader@example.com", "password123")

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/blog/99999", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Blog not found", body["msg"])
}

func TestGetBlog_NonNumericID(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "reader", "reader@example.com", "password123")

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/blog/abc", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Blog not found", body["msg"])
}

func TestGetBlogs_NewestFirst(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "lister", "lister@example.com", "password123")

	first := createBlog(t, app, tok, "Post A", "a")
	second := createBlog(t, app, tok, "Post B", "b")

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/blog/bulk", tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "List of all blogs", body["msg"])

	blogs, ok := body["blogs"].([]any)
	require.True(t, ok)
	require.Len(t, blogs, 2)

	ids := make([]float64, 0, len(blogs))
	for _, b := range blogs {
		entry := b.(map[string]any)
		ids = append(ids, entry["id"].(float64))
	}
	// Descending recency; ties broken by id, so the later post leads.
	assert.Equal(t, []float64{second, first}, ids)
}

func TestGetBlogs_Pagination(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "pager", "pager@example.com", "password123")

	for i := 0; i < 5; i++ {
		createBlog(t, app, tok, fmt.Sprintf("Post %d", i), "content")
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/blog/bulk?limit=2&offset=1", tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	blogs, ok := body["blogs"].([]any)
	require.True(t, ok)
	assert.Len(t, blogs, 2)
}

func TestUpdateBlog_Owner(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "owner", "owner@example.com", "password123")
	id := createBlog(t, app, tok, "Before", "old content")

	resp, body := doJSON(t, app, http.MethodPut, "/api/v1/blog/", tok, map[string]any{
		"id":      uint(id),
		"title":   "After",
		"content": "new content",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Blog updated successfully", body["msg"])

	_, getBody := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/blog/%d", uint(id)), tok, nil)
	blog := getBody["blog"].(map[string]any)
	assert.Equal(t, "After", blog["title"])
	assert.Equal(t, "new content", blog["content"])
}

func TestUpdateBlog_NonOwnerForbidden(t *testing.T) {
	_, app := newTestServer(t)
	ownerTok := signupUser(t, app, "owner", "owner@example.com", "password123")
	otherTok := signupUser(t, app, "other", "other@example.com", "password123")

	id := createBlog(t, app, ownerTok, "Mine", "hands off")

	resp, _ := doJSON(t, app, http.MethodPut, "/api/v1/blog/", otherTok, map[string]any{
		"id":      uint(id),
		"title":   "Hijacked",
		"content": "gotcha",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Content must be untouched
	_, getBody := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/blog/%d", uint(id)), ownerTok, nil)
	blog := getBody["blog"].(map[string]any)
	assert.Equal(t, "Mine", blog["title"])
}

func TestUpdateBlog_MissingPost(t *testing.T) {
	_, app := newTestServer(t)
	tok := signupUser(t, app, "owner", "owner@example.com", "password123")

	resp, _ := doJSON(t, app, http.MethodPut, "/api/v1/blog/", tok, map[string]any{
		"id":      99999,
		"title":   "Ghost",
		"content": "nothing here",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
