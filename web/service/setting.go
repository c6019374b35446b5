package service

import (
	"course-admin/database"
	"course-admin/database/model"
	"course-admin/util/errs"
	"course-admin/validation"
)

type SettingService struct{}

// SettingFields is the whitelisted request body for settings.
type SettingFields struct {
	Name      *string `json:"name"`
	Icp       *string `json:"icp"`
	Copyright *string `json:"copyright"`
}

// SettingFilter narrows a setting list request.
type SettingFilter struct {
	Name string
}

func (s *SettingService) Create(fields SettingFields) (*model.Setting, error) {
	setting := &model.Setting{}
	namePresent := applySettingFields(setting, fields)

	if err := s.validate(setting, namePresent); err != nil {
		return nil, err
	}
	err := database.GetDB().Create(setting).Error
	return setting, err
}

func (s *SettingService) Get(id uint) (*model.Setting, error) {
	setting := &model.Setting{}
	err := database.GetDB().First(setting, id).Error
	if database.IsNotFound(err) {
		return nil, errs.NewNotFoundError("setting", id)
	} else if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) List(plan ListPlan, filter SettingFilter) ([]model.Setting, int64, error) {
	query := database.GetDB().Model(&model.Setting{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var settings []model.Setting
	err := query.Order("id DESC").
		Offset(plan.Offset()).
		Limit(plan.PageSize).
		Find(&settings).
		Error
	return settings, total, err
}

func (s *SettingService) Update(id uint, fields SettingFields) (*model.Setting, error) {
	setting, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applySettingFields(setting, fields)

	if err := s.validate(setting, true); err != nil {
		return nil, err
	}
	err = database.GetDB().Save(setting).Error
	return setting, err
}

func (s *SettingService) Delete(id uint) error {
	setting, err := s.Get(id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(setting).Error
}

func applySettingFields(setting *model.Setting, fields SettingFields) (namePresent bool) {
	if fields.Name != nil {
		setting.Name = *fields.Name
		namePresent = true
	}
	if fields.Icp != nil {
		setting.Icp = *fields.Icp
	}
	if fields.Copyright != nil {
		setting.Copyright = *fields.Copyright
	}
	return namePresent
}

func (s *SettingService) validate(setting *model.Setting, namePresent bool) error {
	return validation.Apply(
		validation.Field{Name: "name", Checks: []validation.Check{
			validation.Required(namePresent, "name is required."),
			validation.NonEmpty(setting.Name, "name cannot be empty."),
		}},
	)
}
