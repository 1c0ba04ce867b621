package database

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"oficina/internal/domain/entities"
)

// SchemaVersion is the current schema generation. Version 1 was the original
// layout without discount/final amount/payment method/notes on orders;
// version 2 is the superset in use today. AutoMigrate adds the missing
// columns on old files and the marker records which generation the file is
// at, so future migrations that AutoMigrate cannot express have something to
// branch on.
const SchemaVersion = 2

// SchemaInfo is the single-row schema-version marker.
type SchemaInfo struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

func (SchemaInfo) TableName() string {
	return "schema_info"
}

// Connect opens (creating if needed) the SQLite file at path with foreign-key
// enforcement on, and brings the schema up to date.
func Connect(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates missing tables and columns and stamps the schema version.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entities.Customer{},
		&entities.ServiceOrder{},
		&entities.LineItem{},
		&SchemaInfo{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return stampSchemaVersion(db)
}

func stampSchemaVersion(db *gorm.DB) error {
	var info SchemaInfo
	err := db.First(&info).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&SchemaInfo{ID: 1, Version: SchemaVersion}).Error
	case err != nil:
		return err
	case info.Version < SchemaVersion:
		log.WithFields(log.Fields{"from": info.Version, "to": SchemaVersion}).Info("schema upgraded")
		return db.Model(&info).Update("version", SchemaVersion).Error
	}
	return nil
}
