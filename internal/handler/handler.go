package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shop-api/internal/service"
	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter; on failure it writes a 400
// response and returns false.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its HTTP status. conflictStatus
// lets call sites distinguish uniqueness conflicts (409) from
// referential-guard violations (400); unexpected storage errors are
// reported generically without leaking internals.
func respondError(c *gin.Context, err error, conflictStatus int, conflictMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, "Not found.")
	case errors.Is(err, service.ErrConflict):
		util.Error(c, conflictStatus, conflictMsg)
	default:
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
