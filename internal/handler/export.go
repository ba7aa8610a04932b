package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces admin-only tag exports across all stores.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

type tagExportRow struct {
	ID        uint
	Name      string
	StoreID   uint
	StoreName string
	ItemCount int64
}

func (h *ExportHandler) tagRows() ([]tagExportRow, error) {
	var rows []tagExportRow
	err := h.DB.Table("tags").
		Select("tags.id, tags.name, tags.store_id, stores.name AS store_name, COUNT(item_tags.item_id) AS item_count").
		Joins("JOIN stores ON stores.id = tags.store_id").
		Joins("LEFT JOIN item_tags ON item_tags.tag_id = tags.id").
		Group("tags.id").
		Order("tags.id").
		Scan(&rows).Error
	return rows, err
}

var exportHeader = []string{"ID", "Name", "Store ID", "Store", "Linked Items"}

// TagsCSV 导出所有标签为 CSV。
func (h *ExportHandler) TagsCSV(c *gin.Context) {
	rows, err := h.tagRows()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"tags_%s.csv\"", time.Now().Format("20060102")))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for _, r := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			strconv.FormatUint(uint64(r.StoreID), 10),
			r.StoreName,
			strconv.FormatInt(r.ItemCount, 10),
		})
	}
	w.Flush()
}

// TagsXLSX 导出所有标签为 XLSX。
func (h *ExportHandler) TagsXLSX(c *gin.Context) {
	rows, err := h.tagRows()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	for i, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for i, r := range rows {
		values := []interface{}{r.ID, r.Name, r.StoreID, r.StoreName, r.ItemCount}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"tags_%s.xlsx\"", time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		// headers already sent, nothing left to do but log via gin recovery
		_ = c.Error(err)
	}
}
