package server

import (
	"fmt"
	"net/http"
	"testing"

	"blogcms/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAndHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Welcome to Blog CMS API")

	resp, body = doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))

	resp, _ = doJSON(t, app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decode[map[string]any](t, body)
	checks := ready["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["database"])
	assert.Equal(t, "disabled", checks["redis"])
}

func TestUserLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/users", map[string]any{
		"email": "ada@example.com", "username": "ada", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	user := decode[models.User](t, body)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.NotContains(t, string(body), "hashed_password")

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/users", map[string]any{
		"email": "ada@example.com", "username": "other", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered", decode[models.ErrorResponse](t, body).Error)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/users", map[string]any{
		"email": "other@example.com", "username": "ada", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already taken", decode[models.ErrorResponse](t, body).Error)

	path := fmt.Sprintf("/api/v1/users/%d", user.ID)
	resp, body = doJSON(t, app, http.MethodPut, path, map[string]any{"full_name": "Ada Lovelace"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	updated := decode[models.User](t, body)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Ada Lovelace", *updated.FullName)
	assert.Equal(t, "ada@example.com", updated.Email)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/users?skip=0&limit=10", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.User](t, body), 1)

	resp, _ = doJSON(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, models.CodeNotFound, decode[models.ErrorResponse](t, body).Code)

	resp, _ = doJSON(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidRequests(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/posts", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "author_id")

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/users", map[string]any{
		"email": "not-an-email", "username": "ada", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeValidation, decode[models.ErrorResponse](t, body).Code)
}

func TestPostsAndComments(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/v1/users", map[string]any{
		"email": "ada@example.com", "username": "ada", "password": "pw",
	})
	author := decode[models.User](t, body)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]any{
		"name": "Go", "slug": "go",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	category := decode[models.Category](t, body)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]any{
		"name": "Golang", "slug": "go",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category with this slug already exists", decode[models.ErrorResponse](t, body).Error)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/categories/slug/go", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, category.ID, decode[models.Category](t, body).ID)

	postPath := fmt.Sprintf("/api/v1/posts?author_id=%d", author.ID)
	resp, body = doJSON(t, app, http.MethodPost, postPath, map[string]any{
		"title": "Hello", "slug": "hello", "content": "body", "is_published": true, "category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	post := decode[models.Post](t, body)
	assert.NotNil(t, post.PublishedAt)
	require.NotNil(t, post.Author)
	assert.Equal(t, author.ID, post.Author.ID)
	require.NotNil(t, post.Category)
	assert.Equal(t, "go", post.Category.Slug)

	resp, body = doJSON(t, app, http.MethodPost, postPath, map[string]any{
		"title": "Again", "slug": "hello", "content": "body",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Post with this slug already exists", decode[models.ErrorResponse](t, body).Error)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/posts?author_id=999", map[string]any{
		"title": "Orphan", "slug": "orphan", "content": "body",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Author not found", decode[models.ErrorResponse](t, body).Error)

	// Each read counts a view.
	getPath := fmt.Sprintf("/api/v1/posts/%d", post.ID)
	_, _ = doJSON(t, app, http.MethodGet, getPath, nil)
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/posts/slug/hello", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[models.Post](t, body).ViewCount)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/posts?published_only=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Post](t, body), 1)

	commentPath := fmt.Sprintf("/api/v1/comments?author_id=%d", author.ID)
	resp, body = doJSON(t, app, http.MethodPost, commentPath, map[string]any{
		"content": "first", "post_id": post.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	parent := decode[models.Comment](t, body)
	assert.False(t, parent.IsApproved)

	resp, body = doJSON(t, app, http.MethodPost, commentPath, map[string]any{
		"content": "reply", "post_id": post.ID, "parent_id": parent.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = doJSON(t, app, http.MethodPost, commentPath, map[string]any{
		"content": "lost", "post_id": 999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Post not found", decode[models.ErrorResponse](t, body).Error)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/comments/%d/replies", parent.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Comment](t, body), 1)

	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/comments/%d", parent.ID), map[string]any{"is_approved": true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[models.Comment](t, body).IsApproved)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/comments/post/%d", post.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Comment](t, body), 2)

	// Deleting the post takes its comments with it.
	resp, _ = doJSON(t, app, http.MethodDelete, getPath, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/comments", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.Comment](t, body))
}

func TestCategoryUpdateAndDelete(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/v1/users", map[string]any{
		"email": "ada@example.com", "username": "ada", "password": "pw",
	})
	author := decode[models.User](t, body)

	_, body = doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Go", "slug": "go"})
	golang := decode[models.Category](t, body)
	_, body = doJSON(t, app, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Rust", "slug": "rust"})
	rust := decode[models.Category](t, body)

	categoryPath := fmt.Sprintf("/api/v1/categories/%d", golang.ID)
	resp, body := doJSON(t, app, http.MethodPut, categoryPath, map[string]any{"description": "Gophers"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	updated := decode[models.Category](t, body)
	assert.Equal(t, "Go", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Gophers", *updated.Description)

	resp, body = doJSON(t, app, http.MethodPut, categoryPath, map[string]any{"slug": rust.Slug})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category with this slug already exists", decode[models.ErrorResponse](t, body).Error)

	resp, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/posts?author_id=%d", author.ID), map[string]any{
		"title": "Hello", "slug": "hello", "content": "body", "category_id": golang.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	post := decode[models.Post](t, body)
	require.NotNil(t, post.CategoryID)

	resp, _ = doJSON(t, app, http.MethodDelete, categoryPath, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Posts outlive their category.
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detached := decode[models.Post](t, body)
	assert.Nil(t, detached.CategoryID)
	assert.Nil(t, detached.Category)

	resp, body = doJSON(t, app, http.MethodGet, categoryPath, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, models.CodeNotFound, decode[models.ErrorResponse](t, body).Code)

	resp, _ = doJSON(t, app, http.MethodPut, categoryPath, map[string]any{"name": "Gone"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, categoryPath, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
