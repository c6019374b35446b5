package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateListFlow(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/admin/categories",
		map[string]any{"name": "Web", "rank": 1})
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Status)
	assert.Equal(t, "create category succeeded.", env.Message)
	category, ok := env.Data["category"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Web", category["name"])

	code, env = doJSON(t, engine, http.MethodPost, "/admin/categories",
		map[string]any{"name": "Web", "rank": 2})
	require.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.Equal(t, "request parameters are invalid.", env.Message)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "name already exists")

	code, env = doJSON(t, engine, http.MethodGet, "/admin/categories?name=We", nil)
	require.Equal(t, http.StatusOK, code)
	pagination, ok := env.Data["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, pagination["total"])
	categories, ok := env.Data["categories"].([]any)
	require.True(t, ok)
	assert.Len(t, categories, 1)
}

func TestCategoryGetUnknownId(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodGet, "/admin/categories/9999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Status)
	assert.Equal(t, "resource does not exist.", env.Message)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "9999")
}

func TestCategoryNonNumericId(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodGet, "/admin/categories/abc", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Status)
}

func TestCategoryDeleteConflictOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/admin/categories",
		map[string]any{"name": "Web"})
	require.Equal(t, http.StatusCreated, code)
	category := env.Data["category"].(map[string]any)
	categoryId := int(category["id"].(float64))

	code, _ = doJSON(t, engine, http.MethodPost, "/admin/courses", map[string]any{
		"categoryId": categoryId,
		"userId":     1,
		"name":       "HTML basics",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env = doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/admin/categories/%d", categoryId), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "cannot be deleted")
}

func TestCategoryBadBody(t *testing.T) {
	engine := newTestEngine(t)

	req := "{not json"
	code, env := doJSON(t, engine, http.MethodPost, "/admin/categories", req)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "invalid request body.")
}
