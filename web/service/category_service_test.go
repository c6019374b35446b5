package service

import (
	"testing"

	"course-admin/util/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateDefaultsRank(t *testing.T) {
	setup(t)
	service := CategoryService{}

	category, err := service.Create(CategoryFields{Name: strPtr("Web")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, category.Rank)
}

func TestCategoryDuplicateNameRejected(t *testing.T) {
	setup(t)
	service := CategoryService{}

	_, err := service.Create(CategoryFields{Name: strPtr("Web"), Rank: intPtr(1)})
	require.NoError(t, err)

	_, err = service.Create(CategoryFields{Name: strPtr("Web"), Rank: intPtr(2)})
	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "name already exists, please choose another name.")

	_, total, err := service.List(ParsePage("", ""), CategoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCategoryRankMustBePositive(t *testing.T) {
	setup(t)
	service := CategoryService{}

	_, err := service.Create(CategoryFields{Name: strPtr("Web"), Rank: intPtr(-3)})
	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "rank must be a positive integer.")
}

func TestCategoryListOrdersByRankThenId(t *testing.T) {
	setup(t)
	service := CategoryService{}

	first, err := service.Create(CategoryFields{Name: strPtr("Backend"), Rank: intPtr(2)})
	require.NoError(t, err)
	second, err := service.Create(CategoryFields{Name: strPtr("Frontend"), Rank: intPtr(1)})
	require.NoError(t, err)
	third, err := service.Create(CategoryFields{Name: strPtr("Database"), Rank: intPtr(2)})
	require.NoError(t, err)

	categories, total, err := service.List(ParsePage("", ""), CategoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, categories, 3)
	assert.Equal(t, second.Id, categories[0].Id)
	assert.Equal(t, first.Id, categories[1].Id)
	assert.Equal(t, third.Id, categories[2].Id)
}

func TestCategoryDeleteBlockedByCourses(t *testing.T) {
	setup(t)
	categoryService := CategoryService{}
	courseService := CourseService{}

	category, err := categoryService.Create(CategoryFields{Name: strPtr("Web")})
	require.NoError(t, err)

	// The seeded admin user (id 1) owns the course.
	_, err = courseService.Create(CourseFields{
		CategoryId: uintPtr(category.Id),
		UserId:     uintPtr(1),
		Name:       strPtr("HTML first steps"),
	})
	require.NoError(t, err)

	err = categoryService.Delete(category.Id)
	var conflictErr *errs.ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// The category must still exist.
	_, err = categoryService.Get(category.Id)
	assert.NoError(t, err)
}

func TestCategoryDeleteWithoutCourses(t *testing.T) {
	setup(t)
	service := CategoryService{}

	category, err := service.Create(CategoryFields{Name: strPtr("Web")})
	require.NoError(t, err)

	require.NoError(t, service.Delete(category.Id))

	_, err = service.Get(category.Id)
	var notFoundErr *errs.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCategoryUpdateKeepsOwnName(t *testing.T) {
	setup(t)
	service := CategoryService{}

	category, err := service.Create(CategoryFields{Name: strPtr("Web")})
	require.NoError(t, err)

	updated, err := service.Update(category.Id, CategoryFields{Name: strPtr("Web"), Rank: intPtr(5)})
	require.NoError(t, err)
	assert.EqualValues(t, 5, updated.Rank)
}
