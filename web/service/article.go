package service

import (
	"course-admin/database"
	"course-admin/database/model"
	"course-admin/util/errs"
	"course-admin/validation"
)

type ArticleService struct{}

// ArticleFields is the whitelisted request body for articles.
type ArticleFields struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ArticleFilter narrows an article list request.
type ArticleFilter struct {
	Title string
}

func (s *ArticleService) Create(fields ArticleFields) (*model.Article, error) {
	article := &model.Article{}
	titlePresent, contentPresent := applyArticleFields(article, fields)

	if err := s.validate(article, titlePresent, contentPresent); err != nil {
		return nil, err
	}
	err := database.GetDB().Create(article).Error
	return article, err
}

func (s *ArticleService) Get(id uint) (*model.Article, error) {
	article := &model.Article{}
	err := database.GetDB().First(article, id).Error
	if database.IsNotFound(err) {
		return nil, errs.NewNotFoundError("article", id)
	} else if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) List(plan ListPlan, filter ArticleFilter) ([]model.Article, int64, error) {
	query := database.GetDB().Model(&model.Article{})
	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err := query.Order("id DESC").
		Offset(plan.Offset()).
		Limit(plan.PageSize).
		Find(&articles).
		Error
	return articles, total, err
}

func (s *ArticleService) Update(id uint, fields ArticleFields) (*model.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyArticleFields(article, fields)

	if err := s.validate(article, true, true); err != nil {
		return nil, err
	}
	err = database.GetDB().Save(article).Error
	return article, err
}

func (s *ArticleService) Delete(id uint) error {
	article, err := s.Get(id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(article).Error
}

func applyArticleFields(article *model.Article, fields ArticleFields) (titlePresent, contentPresent bool) {
	if fields.Title != nil {
		article.Title = *fields.Title
		titlePresent = true
	}
	if fields.Content != nil {
		article.Content = *fields.Content
		contentPresent = true
	}
	return titlePresent, contentPresent
}

func (s *ArticleService) validate(article *model.Article, titlePresent, contentPresent bool) error {
	return validation.Apply(
		validation.Field{Name: "title", Checks: []validation.Check{
			validation.Required(titlePresent, "title is required."),
			validation.NonEmpty(article.Title, "title cannot be empty."),
			validation.Length(article.Title, 2, 45, "title length must be between 2 and 45."),
		}},
		validation.Field{Name: "content", Checks: []validation.Check{
			validation.Required(contentPresent, "content is required."),
			validation.NonEmpty(article.Content, "content cannot be empty."),
		}},
	)
}
