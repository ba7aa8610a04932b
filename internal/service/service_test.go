package service

import (
	"path/filepath"
	"testing"

	"shop-api/internal/database"
	"shop-api/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreateStore(t *testing.T, db *gorm.DB, name string) *models.Store {
	t.Helper()
	store, err := NewStoreService(db).Create(name)
	if err != nil {
		t.Fatalf("create store %q: %v", name, err)
	}
	return store
}

func mustCreateItem(t *testing.T, db *gorm.DB, storeID uint, name string) *models.Item {
	t.Helper()
	item, err := NewItemService(db).Create(storeID, name, 9.99)
	if err != nil {
		t.Fatalf("create item %q: %v", name, err)
	}
	return item
}

func mustCreateTag(t *testing.T, db *gorm.DB, storeID uint, name string) *models.Tag {
	t.Helper()
	tag, err := NewTagRegistry(db).Create(storeID, name)
	if err != nil {
		t.Fatalf("create tag %q: %v", name, err)
	}
	return tag
}

func countLinks(t *testing.T, db *gorm.DB, itemID, tagID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.ItemTag{}).
		Where("item_id = ? AND tag_id = ?", itemID, tagID).
		Count(&n).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	return n
}
