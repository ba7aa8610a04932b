package service

import (
	"errors"
	"testing"

	"shop-api/internal/models"
)

func TestTagCreate_DuplicateNameInStore(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")

	if _, err := reg.Create(store.ID, "fiction"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := reg.Create(store.ID, "fiction"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate create error = %v, want ErrConflict", err)
	}

	// exactly one row persisted
	var n int64
	if err := db.Model(&models.Tag{}).
		Where("store_id = ? AND name = ?", store.ID, "fiction").
		Count(&n).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if n != 1 {
		t.Errorf("tag rows = %d, want 1", n)
	}
}

func TestTagCreate_SameNameDifferentStore(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	s1 := mustCreateStore(t, db, "books")
	s2 := mustCreateStore(t, db, "music")

	if _, err := reg.Create(s1.ID, "sale"); err != nil {
		t.Fatalf("create in first store failed: %v", err)
	}
	if _, err := reg.Create(s2.ID, "sale"); err != nil {
		t.Errorf("same name in another store should succeed, got %v", err)
	}
}

func TestTagCreate_StoreMissing(t *testing.T) {
	db := setupTestDB(t)

	if _, err := NewTagRegistry(db).Create(999, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("create in missing store error = %v, want ErrNotFound", err)
	}
}

func TestTagListForStore(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")
	mustCreateTag(t, db, store.ID, "fiction")
	mustCreateTag(t, db, store.ID, "used")

	tags, err := reg.ListForStore(store.ID)
	if err != nil {
		t.Fatalf("ListForStore failed: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("len(tags) = %d, want 2", len(tags))
	}

	if _, err := reg.ListForStore(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("ListForStore(999) error = %v, want ErrNotFound", err)
	}
}

func TestTagLink_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")
	item := mustCreateItem(t, db, store.ID, "go in practice")
	tag := mustCreateTag(t, db, store.ID, "fiction")

	if _, err := reg.Link(item.ID, tag.ID); err != nil {
		t.Fatalf("first link failed: %v", err)
	}
	if _, err := reg.Link(item.ID, tag.ID); err != nil {
		t.Fatalf("re-link failed: %v", err)
	}

	if n := countLinks(t, db, item.ID, tag.ID); n != 1 {
		t.Errorf("join rows = %d, want 1 (pair must stay unique)", n)
	}
}

func TestTagLink_MissingEntities(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")
	item := mustCreateItem(t, db, store.ID, "go in practice")
	tag := mustCreateTag(t, db, store.ID, "fiction")

	if _, err := reg.Link(999, tag.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("link with missing item error = %v, want ErrNotFound", err)
	}
	if _, err := reg.Link(item.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("link with missing tag error = %v, want ErrNotFound", err)
	}
}

func TestTagUnlink_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")
	item := mustCreateItem(t, db, store.ID, "go in practice")
	tag := mustCreateTag(t, db, store.ID, "fiction")

	if _, err := reg.Link(item.ID, tag.ID); err != nil {
		t.Fatalf("link failed: %v", err)
	}
	gotItem, gotTag, err := reg.Unlink(item.ID, tag.ID)
	if err != nil {
		t.Fatalf("unlink failed: %v", err)
	}
	if gotItem.ID != item.ID || gotTag.ID != tag.ID {
		t.Errorf("unlink returned (%d, %d), want (%d, %d)", gotItem.ID, gotTag.ID, item.ID, tag.ID)
	}

	// item is back to a state with the tag absent
	if n := countLinks(t, db, item.ID, tag.ID); n != 0 {
		t.Errorf("join rows = %d, want 0", n)
	}
}

func TestTagUnlink_NotLinked(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")
	item := mustCreateItem(t, db, store.ID, "go in practice")
	tag := mustCreateTag(t, db, store.ID, "fiction")

	if _, _, err := reg.Unlink(item.ID, tag.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("unlink of unlinked pair error = %v, want ErrNotFound", err)
	}
}

func TestTagDelete_GuardedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	store := mustCreateStore(t, db, "books")
	item := mustCreateItem(t, db, store.ID, "go in practice")
	tag := mustCreateTag(t, db, store.ID, "fiction")

	if _, err := reg.Link(item.ID, tag.ID); err != nil {
		t.Fatalf("link failed: %v", err)
	}

	if err := reg.Delete(tag.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete of referenced tag error = %v, want ErrConflict", err)
	}

	// tag and its link must survive the failed delete
	if _, err := reg.Get(tag.ID); err != nil {
		t.Errorf("tag should still exist after guarded delete: %v", err)
	}
	if n := countLinks(t, db, item.ID, tag.ID); n != 1 {
		t.Errorf("join rows = %d, want 1", n)
	}

	// unlink, then the delete goes through
	if _, _, err := reg.Unlink(item.ID, tag.ID); err != nil {
		t.Fatalf("unlink failed: %v", err)
	}
	if err := reg.Delete(tag.ID); err != nil {
		t.Fatalf("delete after unlink failed: %v", err)
	}
	if _, err := reg.Get(tag.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestTagDelete_Missing(t *testing.T) {
	db := setupTestDB(t)

	if err := NewTagRegistry(db).Delete(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete of missing tag error = %v, want ErrNotFound", err)
	}
}

func TestTagListAll(t *testing.T) {
	db := setupTestDB(t)
	reg := NewTagRegistry(db)
	s1 := mustCreateStore(t, db, "books")
	s2 := mustCreateStore(t, db, "music")
	mustCreateTag(t, db, s1.ID, "fiction")
	mustCreateTag(t, db, s2.ID, "vinyl")

	tags, err := reg.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("len(tags) = %d, want 2", len(tags))
	}
}
