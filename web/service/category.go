package service

import (
	"course-admin/database"
	"course-admin/database/model"
	"course-admin/util/errs"
	"course-admin/validation"
)

type CategoryService struct{}

// CategoryFields is the whitelisted request body for categories.
type CategoryFields struct {
	Name *string `json:"name"`
	Rank *int    `json:"rank"`
}

// CategoryFilter narrows a category list request.
type CategoryFilter struct {
	Name string
}

var categoryUniqueColumns = map[string]string{
	"categories.name": "name already exists, please choose another name.",
}

func (s *CategoryService) Create(fields CategoryFields) (*model.Category, error) {
	category := &model.Category{Rank: 1}
	namePresent := applyCategoryFields(category, fields)

	if err := s.validate(category, namePresent, fields.Rank, 0); err != nil {
		return nil, err
	}
	err := database.GetDB().Create(category).Error
	if err != nil {
		return nil, translateUniqueError(err, categoryUniqueColumns)
	}
	return category, nil
}

func (s *CategoryService) Get(id uint) (*model.Category, error) {
	category := &model.Category{}
	err := database.GetDB().First(category, id).Error
	if database.IsNotFound(err) {
		return nil, errs.NewNotFoundError("category", id)
	} else if err != nil {
		return nil, err
	}
	return category, nil
}

// List orders by rank then id so ties keep a stable display order.
func (s *CategoryService) List(plan ListPlan, filter CategoryFilter) ([]model.Category, int64, error) {
	query := database.GetDB().Model(&model.Category{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := query.Order("rank ASC, id ASC").
		Offset(plan.Offset()).
		Limit(plan.PageSize).
		Find(&categories).
		Error
	return categories, total, err
}

func (s *CategoryService) Update(id uint, fields CategoryFields) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyCategoryFields(category, fields)

	if err := s.validate(category, true, fields.Rank, id); err != nil {
		return nil, err
	}
	err = database.GetDB().Save(category).Error
	if err != nil {
		return nil, translateUniqueError(err, categoryUniqueColumns)
	}
	return category, nil
}

// Delete refuses to remove a category that still has courses. The
// course check and the delete are separate statements; concurrent
// course creation is not guaranteed to be caught.
func (s *CategoryService) Delete(id uint) error {
	var courseCount int64
	err := database.GetDB().Model(&model.Course{}).
		Where("category_id = ?", id).
		Count(&courseCount).
		Error
	if err != nil {
		return err
	}
	if courseCount > 0 {
		return errs.NewConflictError("category has courses and cannot be deleted.")
	}

	category, err := s.Get(id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(category).Error
}

func applyCategoryFields(category *model.Category, fields CategoryFields) (namePresent bool) {
	if fields.Name != nil {
		category.Name = *fields.Name
		namePresent = true
	}
	if fields.Rank != nil && *fields.Rank > 0 {
		category.Rank = uint(*fields.Rank)
	}
	return namePresent
}

func (s *CategoryService) validate(category *model.Category, namePresent bool, rawRank *int, excludeId uint) error {
	// The stored rank defaults to 1; the raw request value is what the
	// positivity rule judges.
	rank := int(category.Rank)
	if rawRank != nil {
		rank = *rawRank
	}

	return validation.Apply(
		validation.Field{Name: "name", Checks: []validation.Check{
			validation.Required(namePresent, "name is required."),
			validation.NonEmpty(category.Name, "name cannot be empty."),
			validation.Length(category.Name, 2, 45, "name length must be between 2 and 45."),
			validation.Unique(s.nameTaken(category.Name, excludeId), "name already exists, please choose another name."),
		}},
		validation.Field{Name: "rank", Checks: []validation.Check{
			validation.IsPositive(rank, "rank must be a positive integer."),
		}},
	)
}

func (s *CategoryService) nameTaken(name string, excludeId uint) func() (bool, error) {
	return func() (bool, error) {
		query := database.GetDB().Model(&model.Category{}).Where("name = ?", name)
		if excludeId > 0 {
			query = query.Where("id <> ?", excludeId)
		}
		var count int64
		err := query.Count(&count).Error
		return count > 0, err
	}
}
