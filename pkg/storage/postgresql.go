package storage

import (
	"fmt"

	"github.com/takimet-io/takimet/pkg/config"
	"github.com/takimet-io/takimet/pkg/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// duplicate keys and FK violations surface as gorm.ErrDuplicatedKey
		// and gorm.ErrForeignKeyViolated instead of driver errors
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Category{},
		&model.Event{},
		&model.RSVP{},
		&model.Comment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
