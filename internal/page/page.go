// Package page describes the layout of the home page: its scalar fields and
// the content streams it owns.
package page

import (
	"regexp"

	"github.com/npohome/internal/block"
)

// Stream names double as column names in the pages table.
const (
	StreamHero         = "hero_block"
	StreamAbout        = "about_block"
	StreamServices     = "services_block"
	StreamTestimonials = "testimonial_block"
	StreamCTA          = "cta_block"
	StreamGallery      = "gallery_block"
	StreamNewsletter   = "newsletter_block"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Fields are the scalar attributes of a home page.
var Fields = &block.Block{
	Name: "home_page",
	Meta: block.Meta{Icon: "home", Label: "Home Page"},
	Fields: []block.Field{
		{Name: "title", Kind: block.KindText, Required: true, MaxLength: 255, HelpText: "The page title as you'd like it to be seen by the public"},
		{Name: "slug", Kind: block.KindText, Required: true, MaxLength: 255, Pattern: slugPattern, HelpText: "The name of the page as it will appear in URLs"},
		{Name: "subtitle", Kind: block.KindText, MaxLength: 200, HelpText: "Optional subtitle for the homepage"},
		{Name: "live", Kind: block.KindBoolean, Default: false, HelpText: "Only live pages are served to visitors"},
	},
}

var streams = []block.Stream{
	block.NewStream(StreamHero, "Hero", block.Hero()),
	block.NewStream(StreamAbout, "About", block.About()),
	block.NewStream(StreamServices, "Services", block.Services()),
	block.NewStream(StreamTestimonials, "Testimonials", block.Testimonials()),
	block.NewStream(StreamCTA, "Call-to-Action", block.CTA()),
	block.NewStream(StreamGallery, "Gallery", block.Gallery()),
	block.NewStream(StreamNewsletter, "Newsletter", block.Newsletter()),
}

// Streams returns the page's content streams in editing order.
func Streams() []block.Stream {
	out := make([]block.Stream, len(streams))
	copy(out, streams)
	return out
}

// Lookup finds a stream by name.
func Lookup(name string) (block.Stream, bool) {
	for _, s := range streams {
		if s.Name == name {
			return s, true
		}
	}
	return block.Stream{}, false
}

// StreamNames lists the stream names in editing order.
func StreamNames() []string {
	names := make([]string, 0, len(streams))
	for _, s := range streams {
		names = append(names, s.Name)
	}
	return names
}
