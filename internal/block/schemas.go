package block

// Block tags.
const (
	TagHero         = "hero_section"
	TagAbout        = "about_section"
	TagServices     = "services_section"
	TagTestimonials = "testimonials_section"
	TagCTA          = "cta_section"
	TagGallery      = "gallery_section"
	TagNewsletter   = "newsletter_section"
)

// Overlay and background colours match the site's global CSS variables.
var themeColors = []Choice{
	{Value: "var(--primary)", Label: "Primary"},
	{Value: "var(--secondary)", Label: "Secondary"},
	{Value: "var(--accent)", Label: "Accent"},
}

// Hero is the full width banner at the top of the page.
func Hero() *Block {
	return &Block{
		Name: TagHero,
		Meta: Meta{Icon: "image", Label: "Hero Section", Template: "home/blocks/hero_block.html"},
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true, MaxLength: 100, HelpText: "Main heading for the hero section"},
			{Name: "subtitle", Kind: KindTextarea, HelpText: "Optional subtitle"},
			{Name: "background_image", Kind: KindImage, Required: true, HelpText: "Background image for the hero section"},
			{Name: "call_to_action", Kind: KindURL, HelpText: "Button URL for call to action"},
			{Name: "overlay_color", Kind: KindChoice, Choices: themeColors, HelpText: "Optional overlay color (matches global CSS variables)"},
		},
	}
}

func About() *Block {
	return &Block{
		Name: TagAbout,
		Meta: Meta{Icon: "doc-full", Label: "About Section", Template: "home/blocks/about_block.html"},
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true, MaxLength: 100, HelpText: "Heading for About section"},
			{Name: "content", Kind: KindRichText, Required: true, HelpText: "Main content; supports rich text"},
			{Name: "image", Kind: KindImage, HelpText: "Image for About section"},
			{Name: "reverse_layout", Kind: KindBoolean, Default: false, HelpText: "Check to reverse image/text layout on desktop"},
		},
	}
}

func serviceEntry() *Block {
	return &Block{
		Name: "service",
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true, MaxLength: 50},
			{Name: "description", Kind: KindTextarea, Required: true, MaxLength: 250},
			{Name: "icon_name", Kind: KindText, MaxLength: 50, HelpText: "Bulma or FontAwesome icon class"},
		},
	}
}

// Services lists the programmes the organisation runs.
func Services() *Block {
	return &Block{
		Name: TagServices,
		Meta: Meta{Icon: "placeholder", Label: "Services / Programs", Template: "home/blocks/services_block.html"},
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true, MaxLength: 100},
			{
				Name:     "services_list",
				Kind:     KindList,
				HelpText: "Add multiple services or programs",
				Item:     &Field{Kind: KindStruct, Required: true, Block: serviceEntry()},
			},
		},
	}
}

func testimonialEntry() *Block {
	return &Block{
		Name: "testimonial",
		Fields: []Field{
			{Name: "name", Kind: KindText, Required: true, MaxLength: 50},
			{Name: "role", Kind: KindText, MaxLength: 50},
			{Name: "content", Kind: KindTextarea, Required: true, MaxLength: 300},
			{Name: "avatar", Kind: KindImage, HelpText: "Optional image/avatar of the person"},
		},
	}
}

func Testimonials() *Block {
	return &Block{
		Name: TagTestimonials,
		Meta: Meta{Icon: "user", Label: "Testimonials", Template: "home/blocks/testimonials_block.html"},
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true, MaxLength: 100},
			{
				Name:     "testimonials",
				Kind:     KindList,
				HelpText: "Add multiple testimonials",
				Item:     &Field{Kind: KindStruct, Required: true, Block: testimonialEntry()},
			},
		},
	}
}

func ctaButton() *Block {
	return &Block{
		Name: "button",
		Fields: []Field{
			{Name: "button_text", Kind: KindText, Required: true, MaxLength: 30, HelpText: "Text for CTA button"},
			{Name: "button_url", Kind: KindURL, Required: true, HelpText: "URL for CTA button"},
		},
	}
}

// CTA is a call-to-action banner with one or more buttons.
func CTA() *Block {
	return &Block{
		Name: TagCTA,
		Meta: Meta{Icon: "placeholder", Label: "Call-to-Action", Template: "home/blocks/cta_block.html"},
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true, MaxLength: 100},
			{Name: "subheading", Kind: KindTextarea},
			{
				Name:     "buttons",
				Kind:     KindList,
				HelpText: "Add one or more buttons",
				Item:     &Field{Kind: KindStruct, Required: true, Block: ctaButton()},
			},
			{Name: "background_color", Kind: KindChoice, Choices: themeColors, HelpText: "Optional background color for CTA section"},
		},
	}
}

func Gallery() *Block {
	return &Block{
		Name: TagGallery,
		Meta: Meta{Icon: "image", Label: "Image Gallery", Template: "home/blocks/gallery_block.html"},
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true, MaxLength: 100},
			{
				Name:     "images",
				Kind:     KindList,
				HelpText: "Add multiple images to gallery",
				Item:     &Field{Kind: KindImage, Required: true},
			},
			{
				Name:     "gallery_layout",
				Kind:     KindChoice,
				Default:  "grid",
				Choices:  []Choice{{Value: "grid", Label: "Grid"}, {Value: "carousel", Label: "Carousel"}},
				HelpText: "Choose layout for the gallery",
			},
		},
	}
}

// Newsletter renders a subscription form posting to an external endpoint.
func Newsletter() *Block {
	return &Block{
		Name: TagNewsletter,
		Meta: Meta{Icon: "mail", Label: "Newsletter Subscription", Template: "home/blocks/newsletter_block.html"},
		Fields: []Field{
			{Name: "heading", Kind: KindText, Required: true, MaxLength: 100},
			{Name: "subheading", Kind: KindTextarea},
			{Name: "form_action_url", Kind: KindURL, Required: true, HelpText: "AJAX submission URL for newsletter form"},
			{Name: "submit_button_text", Kind: KindText, Required: true, MaxLength: 20, Default: "Subscribe"},
		},
	}
}
