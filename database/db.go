// Package database manages the SQLite connection and schema for course-admin.
package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"course-admin/config"
	"course-admin/database/model"
	"course-admin/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminEmail    = "admin@clwy.cn"
	defaultAdminUsername = "admin"
	defaultAdminPassword = "123123"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Article{},
		&model.Category{},
		&model.Course{},
		&model.Setting{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

func initAdminUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if empty {
		hash, err := crypto.HashPasswordAsBcrypt(defaultAdminPassword)
		if err != nil {
			return err
		}
		user := &model.User{
			Email:    defaultAdminEmail,
			Username: defaultAdminUsername,
			Password: hash,
			Nickname: "admin",
			Sex:      model.SexUnspecified,
			Role:     model.RoleAdmin,
		}
		return db.Create(user).Error
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initAdminUser(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
