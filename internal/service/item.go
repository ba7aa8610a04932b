package service

import (
	"errors"
	"fmt"

	"shop-api/internal/models"

	"gorm.io/gorm"
)

// ItemService manages items within stores.
type ItemService struct {
	DB *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{DB: db}
}

func (s *ItemService) Create(storeID uint, name string, price float64) (*models.Item, error) {
	var store models.Store
	if err := s.DB.First(&store, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store %d: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("query store: %w", err)
	}

	item := models.Item{Name: name, Price: price, StoreID: storeID}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &item, nil
}

func (s *ItemService) Get(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.DB.Preload("Tags").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

func (s *ItemService) List() ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Preload("Tags").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

// Update changes name and price. The upsert behavior mirrors a PUT: an
// absent id is NotFound rather than an implicit create, items must
// belong to an existing store.
func (s *ItemService) Update(id uint, name string, price float64) (*models.Item, error) {
	var item models.Item
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query item: %w", err)
	}

	item.Name = name
	item.Price = price
	if err := s.DB.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &item, nil
}

func (s *ItemService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("query item: %w", err)
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemTag{}).Error; err != nil {
			return fmt.Errorf("delete links: %w", err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
}
