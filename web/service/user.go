package service

import (
	"errors"

	"course-admin/database"
	"course-admin/database/model"
	"course-admin/logger"
	"course-admin/util/crypto"
	"course-admin/util/errs"
	"course-admin/validation"
)

// ErrLoginFailed covers both an unknown email and a wrong password, so a
// caller cannot tell registered addresses apart.
var ErrLoginFailed = errors.New("incorrect email or password.")

type UserService struct{}

// UserFields is the whitelisted request body for creating or updating a
// user. Pointer fields distinguish absent from zero; anything else in
// the body is dropped.
type UserFields struct {
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Nickname  *string `json:"nickname"`
	Sex       *int    `json:"sex"`
	Role      *int    `json:"role"`
	Company   *string `json:"company"`
	Introduce *string `json:"introduce"`
	Avatar    *string `json:"avatar"`
}

// UserFilter narrows a user list request.
type UserFilter struct {
	Email    string
	Username string
	Role     *int
}

func (s *UserService) Create(fields UserFields) (*model.User, error) {
	user := &model.User{Sex: model.SexUnspecified}
	present := applyUserFields(user, fields)

	if err := s.validate(user, present, 0); err != nil {
		return nil, err
	}
	if err := s.hashPassword(user); err != nil {
		return nil, err
	}

	err := database.GetDB().Create(user).Error
	if err != nil {
		return nil, translateUniqueError(err, userUniqueColumns)
	}
	return user, nil
}

func (s *UserService) Get(id uint) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.First(user, id).Error
	if database.IsNotFound(err) {
		return nil, errs.NewNotFoundError("user", id)
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(plan ListPlan, filter UserFilter) ([]model.User, int64, error) {
	query := database.GetDB().Model(&model.User{})
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("id DESC").
		Offset(plan.Offset()).
		Limit(plan.PageSize).
		Find(&users).
		Error
	return users, total, err
}

func (s *UserService) Update(id uint, fields UserFields) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyUserFields(user, fields)

	if err := s.validate(user, allUserFieldsPresent, id); err != nil {
		return nil, err
	}
	if fields.Password != nil {
		if err := s.hashPassword(user); err != nil {
			return nil, err
		}
	}

	err = database.GetDB().Save(user).Error
	if err != nil {
		return nil, translateUniqueError(err, userUniqueColumns)
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(user).Error
}

// Login verifies the credentials and returns the matching user. The
// plaintext is never logged.
func (s *UserService) Login(email, password string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Where("email = ?", email).First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrLoginFailed
	} else if err != nil {
		logger.Warning("login lookup err:", err)
		return nil, err
	}
	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrLoginFailed
	}
	return user, nil
}

// userPresence records which required fields the request carried. Update
// always validates the merged record, where every field has a value.
type userPresence struct {
	Email, Username, Password, Nickname, Sex, Role bool
}

var allUserFieldsPresent = userPresence{true, true, true, true, true, true}

var userUniqueColumns = map[string]string{
	"users.email":    "email already exists, please sign in instead.",
	"users.username": "username already exists.",
}

func applyUserFields(user *model.User, fields UserFields) userPresence {
	present := userPresence{}
	if fields.Email != nil {
		user.Email = *fields.Email
		present.Email = true
	}
	if fields.Username != nil {
		user.Username = *fields.Username
		present.Username = true
	}
	if fields.Password != nil {
		user.Password = *fields.Password
		present.Password = true
	}
	if fields.Nickname != nil {
		user.Nickname = *fields.Nickname
		present.Nickname = true
	}
	if fields.Sex != nil {
		user.Sex = clampEnum(*fields.Sex)
		present.Sex = true
	}
	if fields.Role != nil {
		user.Role = clampEnum(*fields.Role)
		present.Role = true
	}
	if fields.Company != nil {
		user.Company = *fields.Company
	}
	if fields.Introduce != nil {
		user.Introduce = *fields.Introduce
	}
	if fields.Avatar != nil {
		user.Avatar = *fields.Avatar
	}
	return present
}

// clampEnum keeps out-of-range request values out of the allowed enum
// sets without overflowing the uint8 columns.
func clampEnum(v int) uint8 {
	if v < 0 || v > 255 {
		return 255
	}
	return uint8(v)
}

func (s *UserService) validate(user *model.User, present userPresence, excludeId uint) error {
	passwordChecks := []validation.Check{
		validation.Required(present.Password, "password is required."),
		validation.NonEmpty(user.Password, "password cannot be empty."),
	}
	// An already-hashed value has no meaningful plaintext length.
	if !crypto.IsBcryptHash(user.Password) {
		passwordChecks = append(passwordChecks,
			validation.Length(user.Password, 6, 45, "password length must be between 6 and 45."))
	}

	return validation.Apply(
		validation.Field{Name: "email", Checks: []validation.Check{
			validation.Required(present.Email, "email is required."),
			validation.NonEmpty(user.Email, "email cannot be empty."),
			validation.IsEmail(user.Email, "email format is invalid."),
			validation.Unique(s.emailTaken(user.Email, excludeId), "email already exists, please sign in instead."),
		}},
		validation.Field{Name: "username", Checks: []validation.Check{
			validation.Required(present.Username, "username is required."),
			validation.NonEmpty(user.Username, "username cannot be empty."),
			validation.Length(user.Username, 2, 45, "username length must be between 2 and 45."),
			validation.Unique(s.usernameTaken(user.Username, excludeId), "username already exists."),
		}},
		validation.Field{Name: "password", Checks: passwordChecks},
		validation.Field{Name: "nickname", Checks: []validation.Check{
			validation.Required(present.Nickname, "nickname is required."),
			validation.NonEmpty(user.Nickname, "nickname cannot be empty."),
			validation.Length(user.Nickname, 2, 45, "nickname length must be between 2 and 45."),
		}},
		validation.Field{Name: "sex", Checks: []validation.Check{
			validation.Required(present.Sex, "sex is required."),
			validation.OneOf(user.Sex, []uint8{model.SexMale, model.SexFemale, model.SexUnspecified},
				"sex must be one of male: 0, female: 1, unspecified: 2."),
		}},
		validation.Field{Name: "role", Checks: []validation.Check{
			validation.Required(present.Role, "role is required."),
			validation.OneOf(user.Role, []uint8{model.RoleStandard, model.RoleAdmin},
				"role must be one of standard user: 0, admin: 100."),
		}},
		validation.Field{Name: "avatar", Checks: []validation.Check{
			validation.IsURL(user.Avatar, "avatar URL is invalid."),
		}},
	)
}

func (s *UserService) emailTaken(email string, excludeId uint) func() (bool, error) {
	return func() (bool, error) {
		return userColumnTaken("email", email, excludeId)
	}
}

func (s *UserService) usernameTaken(username string, excludeId uint) func() (bool, error) {
	return func() (bool, error) {
		return userColumnTaken("username", username, excludeId)
	}
}

func userColumnTaken(column, value string, excludeId uint) (bool, error) {
	query := database.GetDB().Model(&model.User{}).Where(column+" = ?", value)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// hashPassword replaces a plaintext password with its bcrypt hash.
// Values already in bcrypt form pass through unchanged.
func (s *UserService) hashPassword(user *model.User) error {
	if user.Password == "" || crypto.IsBcryptHash(user.Password) {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	return nil
}
