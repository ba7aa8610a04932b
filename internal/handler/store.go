package handler

import (
	"net/http"

	"shop-api/internal/service"
	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
)

// StoreHandler exposes store CRUD over HTTP.
type StoreHandler struct {
	Stores *service.StoreService
}

func NewStoreHandler(stores *service.StoreService) *StoreHandler {
	return &StoreHandler{Stores: stores}
}

type createStoreReq struct {
	Name string `json:"name" binding:"required,max=80"`
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req createStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	store, err := h.Stores.Create(req.Name)
	if err != nil {
		respondError(c, err, http.StatusConflict, "A store with that name already exists.")
		return
	}

	c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) Get(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	store, err := h.Stores.Get(storeID)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Stores.List()
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	if err := h.Stores.Delete(storeID); err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	util.Message(c, http.StatusOK, "Store deleted.")
}
