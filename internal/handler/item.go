package handler

import (
	"net/http"

	"shop-api/internal/service"
	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
)

// ItemHandler exposes item CRUD over HTTP.
type ItemHandler struct {
	Items *service.ItemService
}

func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{Items: items}
}

type itemReq struct {
	Name  string  `json:"name" binding:"required,max=80"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

func (h *ItemHandler) Create(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	item, err := h.Items.Create(storeID, req.Name, req.Price)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Get(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	item, err := h.Items.Get(itemID)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.Items.List()
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Update(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	item, err := h.Items.Update(itemID, req.Name, req.Price)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	if err := h.Items.Delete(itemID); err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	util.Message(c, http.StatusOK, "Item deleted.")
}
