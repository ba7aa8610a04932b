package service

import (
	"errors"
	"fmt"

	"shop-api/internal/models"
	"shop-api/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRegistry manages store-scoped tags and their association with items.
type TagRegistry struct {
	DB *gorm.DB
}

func NewTagRegistry(db *gorm.DB) *TagRegistry {
	return &TagRegistry{DB: db}
}

// ListForStore returns all tags owned by the store.
func (r *TagRegistry) ListForStore(storeID uint) ([]models.Tag, error) {
	var store models.Store
	if err := r.DB.First(&store, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store %d: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("query store: %w", err)
	}

	var tags []models.Tag
	if err := r.DB.Where("store_id = ?", storeID).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	return tags, nil
}

// Create persists a new tag in the store. The (store_id, name) unique
// index closes the race between concurrent creates, the pre-check only
// exists to give the common case a clean error without a failed insert.
func (r *TagRegistry) Create(storeID uint, name string) (*models.Tag, error) {
	var store models.Store
	if err := r.DB.First(&store, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store %d: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("query store: %w", err)
	}

	tag := models.Tag{Name: name, StoreID: storeID}
	if err := r.DB.Create(&tag).Error; err != nil {
		if util.IsUniqueViolation(err) {
			return nil, fmt.Errorf("tag %q in store %d: %w", name, storeID, ErrConflict)
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return &tag, nil
}

// Get returns a single tag by id.
func (r *TagRegistry) Get(tagID uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.DB.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
		}
		return nil, fmt.Errorf("query tag: %w", err)
	}
	return &tag, nil
}

// ListAll returns every tag in the system.
func (r *TagRegistry) ListAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.DB.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	return tags, nil
}

// Link associates a tag with an item. Re-linking an already linked pair
// is a no-op: the join table's composite primary key plus ON CONFLICT
// DO NOTHING keeps the pair unique without a check-then-insert race.
func (r *TagRegistry) Link(itemID, tagID uint) (*models.Tag, error) {
	var item models.Item
	if err := r.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	var tag models.Tag
	if err := r.DB.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
		}
		return nil, fmt.Errorf("query tag: %w", err)
	}

	link := models.ItemTag{ItemID: itemID, TagID: tagID}
	if err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return nil, fmt.Errorf("link tag: %w", err)
	}
	return &tag, nil
}

// Unlink removes the association between an item and a tag. Removing a
// pair that is not linked is NotFound, the caller is referencing an
// association that does not exist.
func (r *TagRegistry) Unlink(itemID, tagID uint) (*models.Item, *models.Tag, error) {
	var item models.Item
	if err := r.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("query item: %w", err)
	}
	var tag models.Tag
	if err := r.DB.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("query tag: %w", err)
	}

	res := r.DB.Where("item_id = ? AND tag_id = ?", itemID, tagID).Delete(&models.ItemTag{})
	if res.Error != nil {
		return nil, nil, fmt.Errorf("unlink tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil, fmt.Errorf("item %d has no tag %d: %w", itemID, tagID, ErrNotFound)
	}
	return &item, &tag, nil
}

// Delete removes a tag. A tag with any linked item must never be
// deleted; the check and the delete run in one transaction so a
// concurrent link cannot slip in between them.
func (r *TagRegistry) Delete(tagID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
			}
			return fmt.Errorf("query tag: %w", err)
		}

		var linked int64
		if err := tx.Model(&models.ItemTag{}).
			Where("tag_id = ?", tagID).
			Count(&linked).Error; err != nil {
			return fmt.Errorf("count links: %w", err)
		}
		if linked > 0 {
			return fmt.Errorf("tag %d still referenced by %d item(s): %w", tagID, linked, ErrConflict)
		}

		if err := tx.Delete(&tag).Error; err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		return nil
	})
}
