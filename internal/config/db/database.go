package db

import (
	"fmt"
	"log"

	"github.com/ngobridge/platform-go/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey, which the submission store relies on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected")
}

// InitWithGormDB replaces the global handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
