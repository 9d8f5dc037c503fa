package block

// Meta is the presentation metadata of a block. It plays no part in validation.
type Meta struct {
	Icon     string `json:"icon" yaml:"icon"`
	Label    string `json:"label" yaml:"label"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// Block is a named, ordered set of fields.
type Block struct {
	Name   string  `json:"name" yaml:"name"`
	Meta   Meta    `json:"meta" yaml:"meta"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Value is a validated block payload keyed by field name.
type Value map[string]any

// Field returns the field declared under name.
func (b *Block) Field(name string) (Field, bool) {
	for _, f := range b.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks payload against every declared field and returns the
// normalised value. All failures are collected; the returned error is of
// type Errors. Keys the schema does not declare are ignored.
func (b *Block) Validate(payload map[string]any) (Value, error) {
	var errs Errors
	value := b.validateAt("", payload, &errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return value, nil
}

// MapRichText returns a copy of payload in which every rich text value,
// including those inside nested lists, has been passed through fn.
// Values that are not strings are left for Validate to reject.
func (b *Block) MapRichText(payload map[string]any, fn func(string) (string, error)) (map[string]any, error) {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	for _, f := range b.Fields {
		raw, ok := out[f.Name]
		if !ok || raw == nil {
			continue
		}
		mapped, err := mapRichText(f, raw, fn)
		if err != nil {
			return nil, err
		}
		out[f.Name] = mapped
	}
	return out, nil
}

func mapRichText(f Field, raw any, fn func(string) (string, error)) (any, error) {
	switch f.Kind {
	case KindRichText:
		s, ok := raw.(string)
		if !ok {
			return raw, nil
		}
		return fn(s)
	case KindStruct:
		m, ok := asMap(raw)
		if !ok || f.Block == nil {
			return raw, nil
		}
		return f.Block.MapRichText(m, fn)
	case KindList:
		items, ok := raw.([]any)
		if !ok || f.Item == nil {
			return raw, nil
		}
		mapped := make([]any, len(items))
		for i, item := range items {
			v, err := mapRichText(*f.Item, item, fn)
			if err != nil {
				return nil, err
			}
			mapped[i] = v
		}
		return mapped, nil
	default:
		return raw, nil
	}
}
