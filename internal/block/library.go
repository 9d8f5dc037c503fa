package block

import "fmt"

// Library maps block tags to their definitions. It preserves registration
// order so editors list block types consistently.
type Library struct {
	order  []string
	blocks map[string]*Block
}

// NewLibrary registers blocks under their names. Duplicate names are rejected.
func NewLibrary(blocks ...*Block) (*Library, error) {
	lib := &Library{blocks: make(map[string]*Block, len(blocks))}
	for _, b := range blocks {
		if err := lib.Register(b); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Register adds a block definition.
func (l *Library) Register(b *Block) error {
	if b == nil || b.Name == "" {
		return fmt.Errorf("block must have a name")
	}
	if _, exists := l.blocks[b.Name]; exists {
		return fmt.Errorf("block %q already registered", b.Name)
	}
	if err := checkFieldNames(b); err != nil {
		return err
	}
	l.blocks[b.Name] = b
	l.order = append(l.order, b.Name)
	return nil
}

// Lookup returns the block registered under tag.
func (l *Library) Lookup(tag string) (*Block, bool) {
	b, ok := l.blocks[tag]
	return b, ok
}

// Blocks returns the registered blocks in registration order.
func (l *Library) Blocks() []*Block {
	out := make([]*Block, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.blocks[name])
	}
	return out
}

// Validate checks payload against the block registered under tag.
func (l *Library) Validate(tag string, payload map[string]any) (Value, error) {
	b, ok := l.blocks[tag]
	if !ok {
		return nil, Errors{{Field: "type", Code: CodeUnknownBlockType, Message: fmt.Sprintf("unknown block type %q", tag)}}
	}
	return b.Validate(payload)
}

// Default returns the library of home page blocks.
func Default() *Library {
	lib, err := NewLibrary(Hero(), About(), Services(), Testimonials(), CTA(), Gallery(), Newsletter())
	if err != nil {
		panic(err)
	}
	return lib
}

// checkFieldNames enforces unique field names at every nesting level.
func checkFieldNames(b *Block) error {
	seen := make(map[string]bool, len(b.Fields))
	for _, f := range b.Fields {
		if f.Name == "" {
			return fmt.Errorf("block %q: field without a name", b.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("block %q: duplicate field %q", b.Name, f.Name)
		}
		seen[f.Name] = true
		if err := checkNested(f); err != nil {
			return fmt.Errorf("block %q: %w", b.Name, err)
		}
	}
	return nil
}

func checkNested(f Field) error {
	switch f.Kind {
	case KindStruct:
		if f.Block == nil {
			return fmt.Errorf("field %q: struct without a block", f.Name)
		}
		return checkFieldNames(f.Block)
	case KindList:
		if f.Item == nil {
			return fmt.Errorf("field %q: list without an item", f.Name)
		}
		return checkNested(*f.Item)
	case KindChoice:
		if len(f.Choices) == 0 {
			return fmt.Errorf("field %q: choice without choices", f.Name)
		}
	}
	return nil
}
