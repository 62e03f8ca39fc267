// database/bootstrap.go
package database

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmintel/entities"
)

// Open connects to the configured store. driver is "sqlite" (path is a file)
// or "mysql" (dsn is a go-sql-driver DSN).
func Open(driver, path, dsn string) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// unique violations surface as gorm.ErrDuplicatedKey on both drivers
		TranslateError: true,
	}

	switch strings.ToLower(driver) {
	case "", "sqlite":
		db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer at a time; checkout transactions queue instead of failing with SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("open mysql: DB_DSN is empty")
		}
		db, err := gorm.Open(mysql.Open(dsn), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)"
}

// MustOpen opens and migrates, exiting the process on failure.
func MustOpen(driver, path, dsn string) *gorm.DB {
	db, err := Open(driver, path, dsn)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("[db] migrate: %v", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Crop{},
		&entities.CropImage{},
		&entities.Scheme{},
		&entities.Product{},
		&entities.CartItem{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.FinancialRecord{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	// must run after AutoMigrate so crop_images exists
	if err := migrateCropImagePaths(db); err != nil {
		return fmt.Errorf("crop image paths: %w", err)
	}
	return nil
}

// migrateCropImagePaths moves the legacy crops.image_paths column (a JSON
// array of relative paths) into crop_images rows, then drops the column.
func migrateCropImagePaths(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasColumn("crops", "image_paths") {
		// fresh DB, nothing to do
		return nil
	}

	type legacyRow struct {
		ID         uint
		ImagePaths *string
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var rows []legacyRow
		if err := tx.Raw(`SELECT id, image_paths FROM crops WHERE image_paths IS NOT NULL AND image_paths <> ''`).Scan(&rows).Error; err != nil {
			return err
		}
		moved := 0
		for _, r := range rows {
			var count int64
			if err := tx.Model(&entities.CropImage{}).Where("crop_id = ?", r.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			imgs := make([]entities.CropImage, 0)
			for i, p := range decodeImagePaths(*r.ImagePaths) {
				imgs = append(imgs, entities.CropImage{CropID: r.ID, Position: i, Path: p})
			}
			if len(imgs) == 0 {
				continue
			}
			if err := tx.Create(&imgs).Error; err != nil {
				return err
			}
			moved += len(imgs)
		}
		if err := tx.Migrator().DropColumn("crops", "image_paths"); err != nil {
			return err
		}
		log.Printf("[db] moved %d legacy crop images from %d crops", moved, len(rows))
		return nil
	})
}

// decodeImagePaths accepts a JSON list or, for very old rows, one bare path.
func decodeImagePaths(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return []string{raw}
	}
	out := arr[:0]
	for _, p := range arr {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
