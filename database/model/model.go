// Package model defines the persisted entities of the course-admin service.
package model

import "time"

// User sex values.
const (
	SexMale        = 0
	SexFemale      = 1
	SexUnspecified = 2
)

// User role values.
const (
	RoleStandard = 0
	RoleAdmin    = 100
)

type User struct {
	Id        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Nickname  string    `json:"nickname" gorm:"not null"`
	Sex       uint8     `json:"sex" gorm:"not null;default:2"`
	Role      uint8     `json:"role" gorm:"not null;default:0"`
	Company   string    `json:"company"`
	Introduce string    `json:"introduce" gorm:"type:text"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Article struct {
	Id        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Category struct {
	Id        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Rank      uint      `json:"rank" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Course struct {
	Id            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryId    uint      `json:"categoryId" gorm:"index;not null"`
	UserId        uint      `json:"userId" gorm:"index;not null"`
	Name          string    `json:"name" gorm:"not null"`
	Image         string    `json:"image"`
	Recommended   bool      `json:"recommended" gorm:"not null;default:false"`
	Introductory  bool      `json:"introductory" gorm:"not null;default:false"`
	Content       string    `json:"content" gorm:"type:text"`
	LikesCount    uint      `json:"likesCount" gorm:"not null;default:0"`
	ChaptersCount uint      `json:"chaptersCount" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryId"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserId"`
}

type Setting struct {
	Id        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Icp       string    `json:"icp"`
	Copyright string    `json:"copyright"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
