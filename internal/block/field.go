package block

import "regexp"

// Kind identifies how a field value is coerced and checked.
type Kind string

const (
	KindText     Kind = "text"     // single line text
	KindTextarea Kind = "textarea" // multi line text
	KindRichText Kind = "richtext" // opaque HTML fragment
	KindURL      Kind = "url"
	KindBoolean  Kind = "boolean"
	KindChoice   Kind = "choice"
	KindImage    Kind = "image" // reference to an externally stored image

	// KindList holds zero or more values described by Field.Item.
	KindList Kind = "list"
	// KindStruct holds a nested block described by Field.Block.
	KindStruct Kind = "struct"
)

// Choice is one entry of a choice field's enumeration.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field describes a single value slot of a block.
type Field struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Kind      Kind     `json:"kind" yaml:"kind"`
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	MaxLength int      `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Default   any      `json:"default,omitempty" yaml:"default,omitempty"`
	Choices   []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
	HelpText  string   `json:"help_text,omitempty" yaml:"help_text,omitempty"`

	// Item describes list elements.
	Item *Field `json:"item,omitempty" yaml:"item,omitempty"`
	// Block is the schema of a struct value.
	Block *Block `json:"block,omitempty" yaml:"block,omitempty"`

	// MinItems and MaxItems bound list length; zero means unbounded.
	MinItems int `json:"min_items,omitempty" yaml:"min_items,omitempty"`
	MaxItems int `json:"max_items,omitempty" yaml:"max_items,omitempty"`

	// Pattern constrains text values.
	Pattern *regexp.Regexp `json:"-" yaml:"-"`
}

// IsText reports whether the kind carries a string that MaxLength applies to.
func (k Kind) IsText() bool {
	switch k {
	case KindText, KindTextarea, KindRichText:
		return true
	default:
		return false
	}
}

// HasChoice reports whether value is one of the declared choices.
func (f Field) HasChoice(value string) bool {
	for _, c := range f.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ChoiceValues lists the declared choice values in order.
func (f Field) ChoiceValues() []string {
	values := make([]string, 0, len(f.Choices))
	for _, c := range f.Choices {
		values = append(values, c.Value)
	}
	return values
}

// emptyValue is what an absent optional field without a default resolves to.
func (f Field) emptyValue() any {
	switch f.Kind {
	case KindBoolean:
		return false
	case KindList:
		return []any{}
	case KindStruct:
		return nil
	default:
		return ""
	}
}
