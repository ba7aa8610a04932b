package service

import (
	"errors"
	"fmt"

	"shop-api/internal/models"
	"shop-api/internal/util"

	"gorm.io/gorm"
)

// StoreService manages stores.
type StoreService struct {
	DB *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{DB: db}
}

func (s *StoreService) Create(name string) (*models.Store, error) {
	store := models.Store{Name: name}
	if err := s.DB.Create(&store).Error; err != nil {
		if util.IsUniqueViolation(err) {
			return nil, fmt.Errorf("store %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("create store: %w", err)
	}
	return &store, nil
}

func (s *StoreService) Get(id uint) (*models.Store, error) {
	var store models.Store
	if err := s.DB.Preload("Items").Preload("Tags").First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query store: %w", err)
	}
	return &store, nil
}

func (s *StoreService) List() ([]models.Store, error) {
	var stores []models.Store
	if err := s.DB.Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	return stores, nil
}

// Delete removes the store together with its items, tags and their
// join rows in one transaction.
func (s *StoreService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("store %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("query store: %w", err)
		}

		// join rows first, sqlite cascades do not reach the m2m table
		if err := tx.Where("item_id IN (?)",
			tx.Model(&models.Item{}).Select("id").Where("store_id = ?", id),
		).Delete(&models.ItemTag{}).Error; err != nil {
			return fmt.Errorf("delete item links: %w", err)
		}
		if err := tx.Where("store_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if err := tx.Where("store_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return fmt.Errorf("delete tags: %w", err)
		}
		if err := tx.Delete(&store).Error; err != nil {
			return fmt.Errorf("delete store: %w", err)
		}
		return nil
	})
}
