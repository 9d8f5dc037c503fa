package service

import (
	"time"

	"github.com/npohome/internal/db"
	"github.com/npohome/internal/page"
)

// PageView is the render-ready form of a home page handed to templates.
type PageView struct {
	ID        uint         `json:"id"`
	Key       string       `json:"key"`
	Title     string       `json:"title"`
	Slug      string       `json:"slug"`
	Subtitle  string       `json:"subtitle"`
	Live      bool         `json:"live"`
	UpdatedAt time.Time    `json:"updated_at"`
	Streams   []StreamView `json:"streams"`
}

// StreamView is one content stream in page order.
type StreamView struct {
	Name   string      `json:"name"`
	Label  string      `json:"label"`
	Blocks []BlockView `json:"blocks"`
}

// BlockView carries a validated instance with the metadata a template
// dispatcher needs to pick its template.
type BlockView struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Icon     string         `json:"icon"`
	Label    string         `json:"label"`
	Template string         `json:"template"`
	Value    map[string]any `json:"value"`
}

// Stream returns the view of the named stream, if present.
func (v PageView) Stream(name string) (StreamView, bool) {
	for _, s := range v.Streams {
		if s.Name == name {
			return s, true
		}
	}
	return StreamView{}, false
}

// RenderView assembles every stream of p in page order.
func (s *HomePageService) RenderView(p *db.HomePage) (PageView, error) {
	view := PageView{
		ID:        p.ID,
		Key:       p.Key,
		Title:     p.Title,
		Slug:      p.Slug,
		Subtitle:  p.Subtitle,
		Live:      p.Live,
		UpdatedAt: p.UpdatedAt,
		Streams:   make([]StreamView, 0, len(page.StreamNames())),
	}

	for _, stream := range page.Streams() {
		instances, err := s.Stream(p, stream.Name)
		if err != nil {
			return PageView{}, err
		}

		sv := StreamView{Name: stream.Name, Label: stream.Label, Blocks: make([]BlockView, 0, len(instances))}
		for _, inst := range instances {
			bv := BlockView{ID: inst.ID, Type: inst.Type, Value: inst.Value}
			if b, ok := stream.Types[inst.Type]; ok {
				bv.Icon = b.Meta.Icon
				bv.Label = b.Meta.Label
				bv.Template = b.Meta.Template
			}
			sv.Blocks = append(sv.Blocks, bv)
		}
		view.Streams = append(view.Streams, sv)
	}
	return view, nil
}
