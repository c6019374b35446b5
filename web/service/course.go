package service

import (
	"fmt"
	"time"

	"course-admin/database"
	"course-admin/database/model"
	"course-admin/util/errs"
	"course-admin/validation"
)

type CourseService struct{}

// CourseFields is the whitelisted request body for courses.
type CourseFields struct {
	CategoryId    *uint   `json:"categoryId"`
	UserId        *uint   `json:"userId"`
	Name          *string `json:"name"`
	Image         *string `json:"image"`
	Recommended   *bool   `json:"recommended"`
	Introductory  *bool   `json:"introductory"`
	Content       *string `json:"content"`
	LikesCount    *int    `json:"likesCount"`
	ChaptersCount *int    `json:"chaptersCount"`
}

// CourseFilter narrows a course list request.
type CourseFilter struct {
	CategoryId   uint
	UserId       uint
	Name         string
	Recommended  *bool
	Introductory *bool
}

/// CourseView is the read representation: the raw foreign keys are
// replaced by the joined category and user summaries.
type CourseView struct {
	Id            uint           `json:"id"`
	Name          string         `json:"name"`
	Image         string         `json:"image"`
	Recommended   bool           `json:"recommended"`
	Introductory  bool           `json:"introductory"`
	Content       string         `json:"content"`
	LikesCount    uint           `json:"likesCount"`
	ChaptersCount uint           `json:"chaptersCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Category      CategorySummary `json:"category"`
	User          UserSummary     `json:"user"`
}

type CategorySummary struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

type UserSummary struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
}

func (s *CourseService) Create(fields CourseFields) (*model.Course, error) {
	course := &model.Course{}
	present := applyCourseFields(course, fields)

	if err := s.validate(course, present); err != nil {
		return nil, err
	}
	err := database.GetDB().Create(course).Error
	return course, err
}

func (s *CourseService) Get(id uint) (*CourseView, error) {
	course := &model.Course{}
	err := database.GetDB().
		Preload("Category").
		Preload("User").
		First(course, id).
		Error
	if database.IsNotFound(err) {
		return nil, errs.NewNotFoundError("course", id)
	} else if err != nil {
		return nil, err
	}
	return newCourseView(course), nil
}

func (s *CourseService) List(plan ListPlan, filter CourseFilter) ([]CourseView, int64, error) {
	query := database.GetDB().Model(&model.Course{})
	if filter.CategoryId > 0 {
		query = query.Where("category_id = ?", filter.CategoryId)
	}
	if filter.UserId > 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Recommended != nil {
		query = query.Where("recommended = ?", *filter.Recommended)
	}
	if filter.Introductory != nil {
		query = query.Where("introductory = ?", *filter.Introductory)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := query.Preload("Category").
		Preload("User").
		Order("id DESC").
		Offset(plan.Offset()).
		Limit(plan.PageSize).
		Find(&courses).
		Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, *newCourseView(&courses[i]))
	}
	return views, total, nil
}

func (s *CourseService) Update(id uint, fields CourseFields) (*model.Course, error) {
	course := &model.Course{}
	err := database.GetDB().First(course, id).Error
	if database.IsNotFound(err) {
		return nil, errs.NewNotFoundError("course", id)
	} else if err != nil {
		return nil, err
	}
	applyCourseFields(course, fields)

	if err := s.validate(course, coursePresence{CategoryId: true, UserId: true, Name: true}); err != nil {
		return nil, err
	}
	err = database.GetDB().Save(course).Error
	return course, err
}

func (s *CourseService) Delete(id uint) error {
	course := &model.Course{}
	err := database.GetDB().First(course, id).Error
	if database.IsNotFound(err) {
		return errs.NewNotFoundError("course", id)
	} else if err != nil {
		return err
	}
	return database.GetDB().Delete(course).Error
}

type coursePresence struct {
	CategoryId, UserId, Name bool
}

func applyCourseFields(course *model.Course, fields CourseFields) coursePresence {
	present := coursePresence{}
	if fields.CategoryId != nil {
		course.CategoryId = *fields.CategoryId
		present.CategoryId = true
	}
	if fields.UserId != nil {
		course.UserId = *fields.UserId
		present.UserId = true
	}
	if fields.Name != nil {
		course.Name = *fields.Name
		present.Name = true
	}
	if fields.Image != nil {
		course.Image = *fields.Image
	}
	if fields.Recommended != nil {
		course.Recommended = *fields.Recommended
	}
	if fields.Introductory != nil {
		course.Introductory = *fields.Introductory
	}
	if fields.Content != nil {
		course.Content = *fields.Content
	}
	if fields.LikesCount != nil && *fields.LikesCount >= 0 {
		course.LikesCount = uint(*fields.LikesCount)
	}
	if fields.ChaptersCount != nil && *fields.ChaptersCount >= 0 {
		course.ChaptersCount = uint(*fields.ChaptersCount)
	}
	return present
}

func (s *CourseService) validate(course *model.Course, present coursePresence) error {
	return validation.Apply(
		validation.Field{Name: "categoryId", Checks: []validation.Check{
			validation.Required(present.CategoryId, "categoryId is required."),
			validation.IsPositive(int(course.CategoryId), "categoryId cannot be empty."),
			validation.Exists(categoryExists(course.CategoryId),
				fmt.Sprintf("category with ID %d does not exist.", course.CategoryId)),
		}},
		validation.Field{Name: "userId", Checks: []validation.Check{
			validation.Required(present.UserId, "userId is required."),
			validation.IsPositive(int(course.UserId), "userId cannot be empty."),
			validation.Exists(userExists(course.UserId),
				fmt.Sprintf("user with ID %d does not exist.", course.UserId)),
		}},
		validation.Field{Name: "name", Checks: []validation.Check{
			validation.Required(present.Name, "name is required."),
			validation.NonEmpty(course.Name, "name cannot be empty."),
			validation.Length(course.Name, 2, 45, "name length must be between 2 and 45."),
		}},
		validation.Field{Name: "image", Checks: []validation.Check{
			validation.IsURL(course.Image, "image URL is invalid."),
		}},
	)
}

func categoryExists(id uint) func() (bool, error) {
	return func() (bool, error) {
		var count int64
		err := database.GetDB().Model(&model.Category{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}
}

func userExists(id uint) func() (bool, error) {
	return func() (bool, error) {
		var count int64
		err := database.GetDB().Model(&model.User{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}
}

func newCourseView(course *model.Course) *CourseView {
	view := &CourseView{
		Id:            course.Id,
		Name:          course.Name,
		Image:         course.Image,
		Recommended:   course.Recommended,
		Introductory:  course.Introductory,
		Content:       course.Content,
		LikesCount:    course.LikesCount,
		ChaptersCount: course.ChaptersCount,
		CreatedAt:     course.CreatedAt,
		UpdatedAt:     course.UpdatedAt,
	}
	if course.Category != nil {
		view.Category = CategorySummary{Id: course.Category.Id, Name: course.Category.Name}
	}
	if course.User != nil {
		view.User = UserSummary{Id: course.User.Id, Username: course.User.Username}
	}
	return view
}
