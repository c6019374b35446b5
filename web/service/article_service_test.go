package service

import (
	"fmt"
	"testing"

	"course-admin/util/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCreateAndGet(t *testing.T) {
	setup(t)
	service := ArticleService{}

	article, err := service.Create(ArticleFields{
		Title:   strPtr("hello world"),
		Content: strPtr("first article body"),
	})
	require.NoError(t, err)

	got, err := service.Get(article.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Title)
	assert.Equal(t, "first article body", got.Content)
}

func TestArticleValidation(t *testing.T) {
	setup(t)
	service := ArticleService{}

	_, err := service.Create(ArticleFields{Title: strPtr("x")})

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "title length must be between 2 and 45.")
	assert.Contains(t, validationErr.Messages, "content is required.")
}

func TestArticleListPagination(t *testing.T) {
	setup(t)
	service := ArticleService{}

	ids := make([]uint, 0, 25)
	for i := 1; i <= 25; i++ {
		article, err := service.Create(ArticleFields{
			Title:   strPtr(fmt.Sprintf("article %02d", i)),
			Content: strPtr("body"),
		})
		require.NoError(t, err)
		ids = append(ids, article.Id)
	}

	plan := ParsePage("2", "10")
	page, total, err := service.List(plan, ArticleFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, page, 10)

	// Page 2 of a descending-by-id listing holds rows 11..20 from the top.
	for i, article := range page {
		assert.Equal(t, ids[len(ids)-11-i], article.Id)
		if i > 0 {
			assert.Greater(t, page[i-1].Id, article.Id)
		}
	}
}

func TestArticleListTitleFilter(t *testing.T) {
	setup(t)
	service := ArticleService{}

	_, err := service.Create(ArticleFields{Title: strPtr("go basics"), Content: strPtr("a")})
	require.NoError(t, err)
	_, err = service.Create(ArticleFields{Title: strPtr("sql basics"), Content: strPtr("b")})
	require.NoError(t, err)

	articles, total, err := service.List(ParsePage("", ""), ArticleFilter{Title: "go"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, articles, 1)
	assert.Equal(t, "go basics", articles[0].Title)
}

func TestArticleUpdateAndDelete(t *testing.T) {
	setup(t)
	service := ArticleService{}

	article, err := service.Create(ArticleFields{Title: strPtr("draft"), Content: strPtr("text")})
	require.NoError(t, err)

	updated, err := service.Update(article.Id, ArticleFields{Title: strPtr("final")})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "text", updated.Content)

	require.NoError(t, service.Delete(article.Id))
	_, err = service.Get(article.Id)
	var notFoundErr *errs.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
