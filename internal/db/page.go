package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HomePage is the persisted home page. Each stream column holds the JSON
// array of {"id","type","value"} block instances for that stream.
type HomePage struct {
	gorm.Model
	Key      string `gorm:"size:36;uniqueIndex;not null"`
	Title    string `gorm:"size:255;not null"`
	Slug     string `gorm:"size:255;uniqueIndex;not null"`
	Subtitle string `gorm:"size:200"`
	Live     bool   `gorm:"default:false"`

	HeroBlock        datatypes.JSON `gorm:"column:hero_block"`
	AboutBlock       datatypes.JSON `gorm:"column:about_block"`
	ServicesBlock    datatypes.JSON `gorm:"column:services_block"`
	TestimonialBlock datatypes.JSON `gorm:"column:testimonial_block"`
	CTABlock         datatypes.JSON `gorm:"column:cta_block"`
	GalleryBlock     datatypes.JSON `gorm:"column:gallery_block"`
	NewsletterBlock  datatypes.JSON `gorm:"column:newsletter_block"`
}

// TableName 指定自定义表名。
func (HomePage) TableName() string {
	return "home_pages"
}

var streamColumns = []string{
	"hero_block",
	"about_block",
	"services_block",
	"testimonial_block",
	"cta_block",
	"gallery_block",
	"newsletter_block",
}

// BeforeSave stores empty streams as "[]" so no stream column is ever NULL.
func (p *HomePage) BeforeSave(*gorm.DB) error {
	for _, name := range streamColumns {
		if col := p.streamColumn(name); len(*col) == 0 {
			*col = datatypes.JSON("[]")
		}
	}
	return nil
}

func (p *HomePage) streamColumn(name string) *datatypes.JSON {
	switch name {
	case "hero_block":
		return &p.HeroBlock
	case "about_block":
		return &p.AboutBlock
	case "services_block":
		return &p.ServicesBlock
	case "testimonial_block":
		return &p.TestimonialBlock
	case "cta_block":
		return &p.CTABlock
	case "gallery_block":
		return &p.GalleryBlock
	case "newsletter_block":
		return &p.NewsletterBlock
	default:
		return nil
	}
}

// StreamData returns the stored JSON for the named stream.
func (p *HomePage) StreamData(name string) ([]byte, bool) {
	col := p.streamColumn(name)
	if col == nil {
		return nil, false
	}
	return []byte(*col), true
}

// SetStreamData replaces the stored JSON for the named stream.
func (p *HomePage) SetStreamData(name string, data []byte) bool {
	col := p.streamColumn(name)
	if col == nil {
		return false
	}
	*col = datatypes.JSON(data)
	return true
}
