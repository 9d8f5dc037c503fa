package block

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Instance is one tagged entry of a content stream.
type Instance struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type"`
	Value Value  `json:"value"`
}

// Stream is an ordered sequence of block instances whose tags must be
// registered in Types.
type Stream struct {
	Name  string            `json:"name" yaml:"name"`
	Label string            `json:"label" yaml:"label"`
	Types map[string]*Block `json:"types" yaml:"types"`
}

// NewStream builds a stream accepting the given blocks under their names.
func NewStream(name, label string, blocks ...*Block) Stream {
	types := make(map[string]*Block, len(blocks))
	for _, b := range blocks {
		types[b.Name] = b
	}
	return Stream{Name: name, Label: label, Types: types}
}

// Tags lists the accepted block tags in sorted order.
func (s Stream) Tags() []string {
	tags := make([]string, 0, len(s.Types))
	for tag := range s.Types {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Validate checks every instance and returns the normalised sequence.
// Any failure rejects the whole sequence; the error is of type Errors and
// every path is rooted at the instance index, e.g. "[3].heading".
func (s Stream) Validate(instances []Instance) ([]Instance, error) {
	var errs Errors
	out := make([]Instance, 0, len(instances))
	seen := make(map[string]bool, len(instances))

	for i, inst := range instances {
		prefix := fmt.Sprintf("[%d]", i)
		b, ok := s.Types[inst.Type]
		if !ok {
			errs.add(prefix, "type", CodeUnknownBlockType,
				"block type %q is not allowed in %s (accepted: %s)", inst.Type, s.Name, strings.Join(s.Tags(), ", "))
			continue
		}

		var instErrs Errors
		value := b.validateAt("", inst.Value, &instErrs)
		if len(instErrs) > 0 {
			errs = append(errs, instErrs.prefixed(prefix)...)
			continue
		}

		id := normaliseID(inst.ID)
		if id == "" || seen[id] {
			id = uuid.NewString()
		}
		seen[id] = true
		out = append(out, Instance{ID: id, Type: inst.Type, Value: value})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func normaliseID(id string) string {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return ""
	}
	return parsed.String()
}

// EncodeInstances renders a stream in its persisted form: a JSON array of
// {"id","type","value"} objects.
func EncodeInstances(instances []Instance) ([]byte, error) {
	if instances == nil {
		instances = []Instance{}
	}
	return json.Marshal(instances)
}

// DecodeInstances parses the persisted form. Empty input is an empty stream.
func DecodeInstances(data []byte) ([]Instance, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Instance{}, nil
	}
	var instances []Instance
	if err := json.Unmarshal(trimmed, &instances); err != nil {
		return nil, fmt.Errorf("decode stream: %w", err)
	}
	if instances == nil {
		instances = []Instance{}
	}
	return instances, nil
}
