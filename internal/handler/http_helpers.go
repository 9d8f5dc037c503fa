package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/npohome/internal/block"
	"github.com/npohome/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondServiceError maps service and validation errors to HTTP responses.
func (a *API) respondServiceError(c *gin.Context, err error) {
	if errs, ok := block.AsErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"errors": []block.ValidationError(errs),
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrPageNotFound):
		respondError(c, http.StatusNotFound, "page not found")
	case errors.Is(err, service.ErrStreamNotFound):
		respondError(c, http.StatusNotFound, "stream not found")
	case errors.Is(err, service.ErrSlugTaken):
		respondError(c, http.StatusConflict, "slug is already in use")
	default:
		c.Error(err)
		a.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
