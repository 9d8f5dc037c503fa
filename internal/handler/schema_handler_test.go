package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/npohome/internal/block"
)

func TestGetSchemaListsBlocksAndStreams(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/api/schema", nil)

	api.GetSchema(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Blocks  []block.Block  `json:"blocks"`
		Streams []streamSchema `json:"streams"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	if len(resp.Blocks) != 7 || len(resp.Streams) != 7 {
		t.Fatalf("expected 7 blocks and 7 streams, got %d and %d", len(resp.Blocks), len(resp.Streams))
	}
	if resp.Blocks[0].Name != block.TagHero || resp.Blocks[0].Meta.Icon != "image" {
		t.Fatalf("unexpected first block: %+v", resp.Blocks[0].Meta)
	}
	if resp.Streams[5].Name != "gallery_block" || resp.Streams[5].Types[0] != block.TagGallery {
		t.Fatalf("unexpected gallery stream: %+v", resp.Streams[5])
	}
}

func TestValidateBlock(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	tests := []struct {
		name   string
		tag    string
		body   map[string]any
		status int
	}{
		{name: "valid cta", tag: block.TagCTA, body: map[string]any{"heading": "Join us"}, status: http.StatusOK},
		{name: "bad url", tag: block.TagCTA, body: map[string]any{
			"heading": "Join us",
			"buttons": []any{map[string]any{"button_text": "Go", "button_url": "not-a-url"}},
		}, status: http.StatusUnprocessableEntity},
		{name: "unknown type", tag: "footer_section", body: map[string]any{}, status: http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(t, http.MethodPost, "/", tc.body)
			c.Params = gin.Params{gin.Param{Key: "type", Value: tc.tag}}

			api.ValidateBlock(c)

			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}
