package handler

import (
	"net/http"

	"shop-api/internal/service"
	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
)

// TagHandler exposes the tag registry over HTTP.
type TagHandler struct {
	Tags *service.TagRegistry
}

func NewTagHandler(tags *service.TagRegistry) *TagHandler {
	return &TagHandler{Tags: tags}
}

// ListForStore returns all tags owned by a store.
func (h *TagHandler) ListForStore(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	tags, err := h.Tags.ListForStore(storeID)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, tags)
}

type createTagReq struct {
	Name string `json:"name" binding:"required,max=80"`
}

// Create adds a tag to a store.
func (h *TagHandler) Create(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	var req createTagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	tag, err := h.Tags.Create(storeID, req.Name)
	if err != nil {
		respondError(c, err, http.StatusConflict, "A tag with that name already exists in that store.")
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// Link tags an item.
func (h *TagHandler) Link(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	tag, err := h.Tags.Link(itemID, tagID)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// Unlink removes a tag from an item.
func (h *TagHandler) Unlink(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	item, tag, err := h.Tags.Unlink(itemID, tagID)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tag removed from item.",
		"item":    item,
		"tag":     tag,
	})
}

// Get returns a single tag.
func (h *TagHandler) Get(c *gin.Context) {
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	tag, err := h.Tags.Get(tagID)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, tag)
}

// Delete removes a tag if no item is tagged with it. The referential
// guard reports as a business-rule 400, not a uniqueness 409.
func (h *TagHandler) Delete(c *gin.Context) {
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	if err := h.Tags.Delete(tagID); err != nil {
		respondError(c, err, http.StatusBadRequest,
			"Could not delete tag. Make sure tag is not associated with any items, then try again.")
		return
	}

	util.Message(c, http.StatusAccepted, "Tag deleted.")
}

// ListAll returns every tag in the system.
func (h *TagHandler) ListAll(c *gin.Context) {
	tags, err := h.Tags.ListAll()
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, tags)
}
