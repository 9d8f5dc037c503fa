package block

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func servicesStream() Stream {
	return NewStream("services_block", "Services", Services())
}

func serviceInstance(title, description string) Instance {
	return Instance{
		Type: TagServices,
		Value: Value{
			"heading": "Programs " + title,
			"services_list": []any{
				map[string]any{"title": title, "description": description},
			},
		},
	}
}

func TestStreamRejectsUnknownBlockType(t *testing.T) {
	_, err := servicesStream().Validate([]Instance{
		serviceInstance("Tutoring", "Homework help"),
		{Type: TagHero, Value: Value{"title": "Welcome", "background_image": "img:1"}},
	})

	errs := mustErrors(t, err)
	if !errs.Has(CodeUnknownBlockType, "[1]") {
		t.Fatalf("expected unknown block type at [1], got %v", errs)
	}
	if !errors.Is(err, ErrUnknownBlockType) {
		t.Fatal("expected errors.Is to match ErrUnknownBlockType")
	}
}

func TestStreamRejectsWholeSubmissionOnOneBadEntry(t *testing.T) {
	instances := make([]Instance, 0, 11)
	for i := 0; i < 10; i++ {
		instances = append(instances, serviceInstance(fmt.Sprintf("Program %d", i), "Described"))
	}
	instances = append(instances[:5], append([]Instance{serviceInstance("Broken", "")}, instances[5:]...)...)

	out, err := servicesStream().Validate(instances)
	if out != nil {
		t.Fatalf("expected no output on failure, got %d instances", len(out))
	}
	errs := mustErrors(t, err)
	if len(errs) != 1 || !errs.Has(CodeMissingRequiredField, "[5].services_list[0].description") {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestStreamCollectsErrorsAcrossInstances(t *testing.T) {
	_, err := servicesStream().Validate([]Instance{
		serviceInstance("", "ok"),
		{Type: "newsletter_section", Value: Value{}},
		serviceInstance("ok", ""),
	})

	errs := mustErrors(t, err)
	want := []Code{CodeMissingRequiredField, CodeUnknownBlockType, CodeMissingRequiredField}
	if diff := cmp.Diff(want, errs.Codes()); diff != "" {
		t.Fatalf("unexpected codes (-want +got):\n%s", diff)
	}
}

func TestStreamAssignsAndKeepsIDs(t *testing.T) {
	existing := uuid.NewString()
	first := serviceInstance("A", "a")
	first.ID = existing
	second := serviceInstance("B", "b")
	second.ID = "not-a-uuid"
	third := serviceInstance("C", "c")
	third.ID = existing

	out, err := servicesStream().Validate([]Instance{first, second, third})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if out[0].ID != existing {
		t.Fatalf("expected id %s to be kept, got %s", existing, out[0].ID)
	}
	for i, inst := range out[1:] {
		if _, err := uuid.Parse(inst.ID); err != nil {
			t.Fatalf("instance %d: expected generated uuid, got %q", i+1, inst.ID)
		}
		if inst.ID == existing {
			t.Fatalf("instance %d: duplicate id was not replaced", i+1)
		}
	}
}

func TestStreamRoundTripThroughPersistedForm(t *testing.T) {
	stream := NewStream("gallery_block", "Gallery", Gallery())
	out, err := stream.Validate([]Instance{
		{Type: TagGallery, Value: Value{"heading": "First", "images": []any{"img:3", "img:1"}}},
		{Type: TagGallery, Value: Value{"heading": "Second", "gallery_layout": "carousel"}},
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	data, err := EncodeInstances(out)
	if err != nil {
		t.Fatalf("EncodeInstances returned error: %v", err)
	}
	reloaded, err := DecodeInstances(data)
	if err != nil {
		t.Fatalf("DecodeInstances returned error: %v", err)
	}

	if diff := cmp.Diff(out, reloaded); diff != "" {
		t.Fatalf("round trip changed the stream (-saved +reloaded):\n%s", diff)
	}
}

func TestDecodeInstancesEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", " [] "} {
		out, err := DecodeInstances([]byte(raw))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		if len(out) != 0 {
			t.Fatalf("%q: expected empty stream, got %v", raw, out)
		}
	}

	if _, err := DecodeInstances([]byte("{")); err == nil {
		t.Fatal("expected malformed JSON to fail")
	}
}
