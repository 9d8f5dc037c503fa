package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npohome/internal/block"
	"github.com/npohome/internal/page"
)

type streamSchema struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Types []string `json:"types"`
}

// GetSchema describes every block and stream so an editor can build its
// input controls.
func (a *API) GetSchema(c *gin.Context) {
	streams := make([]streamSchema, 0, len(page.StreamNames()))
	for _, s := range page.Streams() {
		streams = append(streams, streamSchema{Name: s.Name, Label: s.Label, Types: s.Tags()})
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    page.Fields,
		"blocks":  a.library.Blocks(),
		"streams": streams,
	})
}

// ValidateBlock checks a single block payload without storing it.
func (a *API) ValidateBlock(c *gin.Context) {
	var payload map[string]any
	if !bindJSON(c, &payload, "block body must be a JSON object") {
		return
	}

	value, err := a.library.Validate(c.Param("type"), payload)
	if err != nil {
		if _, ok := block.AsErrors(err); ok {
			a.respondServiceError(c, err)
			return
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}
