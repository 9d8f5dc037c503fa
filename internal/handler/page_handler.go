package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npohome/internal/block"
	"github.com/npohome/internal/db"
	"github.com/npohome/internal/page"
	"github.com/npohome/internal/service"
)

type pagePayload struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Subtitle string `json:"subtitle"`
	Live     bool   `json:"live"`
}

type pageResponse struct {
	ID        uint      `json:"id"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Subtitle  string    `json:"subtitle"`
	Live      bool      `json:"live"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPageResponse(p *db.HomePage) pageResponse {
	return pageResponse{
		ID:        p.ID,
		Key:       p.Key,
		Title:     p.Title,
		Slug:      p.Slug,
		Subtitle:  p.Subtitle,
		Live:      p.Live,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p pagePayload) input() service.PageInput {
	return service.PageInput{Title: p.Title, Slug: p.Slug, Subtitle: p.Subtitle, Live: p.Live}
}

// ListPages returns every home page without stream content.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	out := make([]pageResponse, 0, len(pages))
	for i := range pages {
		out = append(out, newPageResponse(&pages[i]))
	}
	c.JSON(http.StatusOK, gin.H{"pages": out})
}

// CreatePage creates a page with empty streams.
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	p, err := a.pages.Create(c.Request.Context(), payload.input())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": newPageResponse(p)})
}

// GetPage returns the scalar fields of a page.
func (a *API) GetPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := a.pages.Get(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": newPageResponse(p), "streams": page.StreamNames()})
}

// UpdatePage replaces the scalar fields of a page.
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	p, err := a.pages.Update(c.Request.Context(), id, payload.input())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": newPageResponse(p)})
}

// DeletePage removes a page.
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.pages.Delete(c.Request.Context(), id); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStream returns the stored block instances of one stream.
func (a *API) GetStream(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	name := strings.TrimSpace(c.Param("stream"))

	p, err := a.pages.Get(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	instances, err := a.pages.Stream(p, name)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	stream, _ := page.Lookup(name)
	c.JSON(http.StatusOK, gin.H{
		"stream": stream.Name,
		"label":  stream.Label,
		"types":  stream.Tags(),
		"blocks": instances,
	})
}

// UpdateStream replaces a stream with the submitted instances. Nothing is
// stored unless every instance validates.
func (a *API) UpdateStream(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	name := strings.TrimSpace(c.Param("stream"))

	var instances []block.Instance
	if !bindJSON(c, &instances, "stream body must be a JSON array of blocks") {
		return
	}

	p, err := a.pages.SetStream(c.Request.Context(), id, name, instances)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	stored, err := a.pages.Stream(p, name)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "stream saved",
		"stream":  name,
		"blocks":  stored,
	})
}

// GetPageView returns the render view of a page whether or not it is live.
func (a *API) GetPageView(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := a.pages.Get(c.Request.Context(), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	a.respondView(c, p)
}

// ShowPublicPage serves the render view of a live page by slug.
func (a *API) ShowPublicPage(c *gin.Context) {
	p, err := a.pages.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if !p.Live {
		respondError(c, http.StatusNotFound, "page not found")
		return
	}
	a.respondView(c, p)
}

func (a *API) respondView(c *gin.Context, p *db.HomePage) {
	view, err := a.pages.RenderView(p)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
