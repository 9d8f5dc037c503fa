// Package fixture imports home pages from YAML documents. Rich text fields
// are authored in Markdown and converted to HTML before validation.
package fixture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npohome/internal/block"
	"github.com/npohome/internal/page"
	"github.com/npohome/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
)

// Document is the top level of a fixture file.
type Document struct {
	Pages []Page `yaml:"pages"`
}

// Page describes one home page and the streams to load into it.
type Page struct {
	Title    string                `yaml:"title"`
	Slug     string                `yaml:"slug"`
	Subtitle string                `yaml:"subtitle"`
	Live     bool                  `yaml:"live"`
	Streams  map[string][]Instance `yaml:"streams"`
}

// Instance is one block entry in a fixture stream.
type Instance struct {
	ID    string         `yaml:"id"`
	Type  string         `yaml:"type"`
	Value map[string]any `yaml:"value"`
}

// Result summarises an import.
type Result struct {
	Created int
	Updated int
	Streams int
}

// Parse decodes a fixture document.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return doc, fmt.Errorf("parse fixture: %w", err)
	}
	return doc, nil
}

// ParseFile decodes the fixture document at path.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Parse(f)
}

// MarkdownToHTML renders a Markdown fragment as rich text.
func MarkdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(buf.Bytes())), nil
}

// Importer loads fixture documents through the page service so every block
// passes the same validation an editor's save would.
type Importer struct {
	pages *service.HomePageService
}

// NewImporter returns an Importer writing through svc.
func NewImporter(svc *service.HomePageService) *Importer {
	return &Importer{pages: svc}
}

// Import upserts every page of doc by slug and replaces the streams it lists.
// Streams are applied in page order; a validation failure stops the import
// and is returned wrapped with the page slug and stream name.
func (im *Importer) Import(ctx context.Context, doc Document) (Result, error) {
	var result Result
	for _, fp := range doc.Pages {
		input := service.PageInput{Title: fp.Title, Slug: fp.Slug, Subtitle: fp.Subtitle, Live: fp.Live}

		existing, err := im.pages.GetBySlug(ctx, fp.Slug)
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			existing, err = im.pages.Create(ctx, input)
			if err != nil {
				return result, fmt.Errorf("page %q: %w", fp.Slug, err)
			}
			result.Created++
		case err != nil:
			return result, err
		default:
			existing, err = im.pages.Update(ctx, existing.ID, input)
			if err != nil {
				return result, fmt.Errorf("page %q: %w", fp.Slug, err)
			}
			result.Updated++
		}

		for name := range fp.Streams {
			if _, ok := page.Lookup(name); !ok {
				return result, fmt.Errorf("page %q: %w: %s", fp.Slug, service.ErrStreamNotFound, name)
			}
		}

		for _, stream := range page.Streams() {
			entries, ok := fp.Streams[stream.Name]
			if !ok {
				continue
			}
			instances, err := toInstances(stream, entries)
			if err != nil {
				return result, fmt.Errorf("page %q stream %s: %w", fp.Slug, stream.Name, err)
			}
			if _, err := im.pages.SetStream(ctx, existing.ID, stream.Name, instances); err != nil {
				return result, fmt.Errorf("page %q stream %s: %w", fp.Slug, stream.Name, err)
			}
			result.Streams++
		}
	}
	return result, nil
}

func toInstances(stream block.Stream, entries []Instance) ([]block.Instance, error) {
	instances := make([]block.Instance, 0, len(entries))
	for _, entry := range entries {
		value := entry.Value
		if b, ok := stream.Types[entry.Type]; ok && value != nil {
			mapped, err := b.MapRichText(value, MarkdownToHTML)
			if err != nil {
				return nil, err
			}
			value = mapped
		}
		instances = append(instances, block.Instance{ID: entry.ID, Type: entry.Type, Value: value})
	}
	return instances, nil
}
