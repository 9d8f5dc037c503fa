package block

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Schemes accepted by URL fields.
var urlSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

func (b *Block) validateAt(prefix string, payload map[string]any, errs *Errors) Value {
	value := make(Value, len(b.Fields))
	for _, f := range b.Fields {
		raw, present := payload[f.Name]
		if raw == nil {
			present = false
		}
		value[f.Name] = validateField(f, joinPath(prefix, f.Name), raw, present, errs)
	}
	return value
}

// validateField checks one raw value and returns what should be stored for it.
func validateField(f Field, path string, raw any, present bool, errs *Errors) any {
	if !present {
		return resolveEmpty(f, path, errs)
	}

	switch f.Kind {
	case KindText, KindTextarea:
		s, ok := toText(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected text, got %s", describe(raw))
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return resolveEmpty(f, path, errs)
		}
		checkLength(f, path, s, errs)
		if f.Pattern != nil && !f.Pattern.MatchString(s) {
			errs.add(path, f.Name, CodeTypeMismatch, "value %q does not match the required format", s)
		}
		return s

	case KindRichText:
		s, ok := toText(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected rich text, got %s", describe(raw))
			return nil
		}
		plain := PlainText(s)
		if strings.TrimSpace(plain) == "" {
			return resolveEmpty(f, path, errs)
		}
		checkLength(f, path, plain, errs)
		return s

	case KindURL:
		s, ok := toText(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected a URL, got %s", describe(raw))
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return resolveEmpty(f, path, errs)
		}
		if !isAbsoluteURL(s) {
			errs.add(path, f.Name, CodeTypeMismatch, "%q is not a valid absolute URL", s)
			return nil
		}
		checkLength(f, path, s, errs)
		return s

	case KindBoolean:
		v, ok := toBool(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected a boolean, got %s", describe(raw))
			return nil
		}
		if !v && f.Required {
			errs.add(path, f.Name, CodeMissingRequiredField, "this field is required")
		}
		return v

	case KindChoice:
		s, ok := toText(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected a choice, got %s", describe(raw))
			return nil
		}
		if s == "" {
			return resolveEmpty(f, path, errs)
		}
		if !f.HasChoice(s) {
			errs.add(path, f.Name, CodeInvalidChoice, "%q is not one of %s", s, strings.Join(f.ChoiceValues(), ", "))
			return nil
		}
		return s

	case KindImage:
		ref, ok := toImageRef(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected an image reference, got %s", describe(raw))
			return nil
		}
		if ref == "" {
			return resolveEmpty(f, path, errs)
		}
		if strings.IndexFunc(ref, unicode.IsSpace) >= 0 {
			errs.add(path, f.Name, CodeTypeMismatch, "image reference %q must not contain whitespace", ref)
			return nil
		}
		return ref

	case KindList:
		items, ok := raw.([]any)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected a list, got %s", describe(raw))
			return nil
		}
		if len(items) == 0 && f.Required {
			errs.add(path, f.Name, CodeMissingRequiredField, "at least one item is required")
			return []any{}
		}
		if f.MinItems > 0 && len(items) < f.MinItems {
			errs.add(path, f.Name, CodeItemCount, "at least %d items are required, got %d", f.MinItems, len(items))
		}
		if f.MaxItems > 0 && len(items) > f.MaxItems {
			errs.add(path, f.Name, CodeItemCount, "at most %d items are allowed, got %d", f.MaxItems, len(items))
		}
		out := make([]any, 0, len(items))
		item := itemField(f)
		for i, elem := range items {
			out = append(out, validateField(item, fmt.Sprintf("%s[%d]", path, i), elem, elem != nil, errs))
		}
		return out

	case KindStruct:
		m, ok := asMap(raw)
		if !ok {
			errs.add(path, f.Name, CodeTypeMismatch, "expected an object, got %s", describe(raw))
			return nil
		}
		if f.Block == nil {
			return map[string]any{}
		}
		return map[string]any(f.Block.validateAt(path, m, errs))

	default:
		errs.add(path, f.Name, CodeTypeMismatch, "field kind %q is not supported", f.Kind)
		return nil
	}
}

// resolveEmpty handles a field that was absent or blank.
func resolveEmpty(f Field, path string, errs *Errors) any {
	if f.Default != nil && f.Kind != KindList {
		return f.Default
	}
	if f.Required {
		errs.add(path, f.Name, CodeMissingRequiredField, "this field is required")
		return nil
	}
	return f.emptyValue()
}

func checkLength(f Field, path, s string, errs *Errors) {
	if f.MaxLength <= 0 {
		return
	}
	if n := utf8.RuneCountInString(s); n > f.MaxLength {
		errs.add(path, f.Name, CodeLengthExceeded, "ensure this value has at most %d characters (it has %d)", f.MaxLength, n)
	}
}

// itemField names list elements after their list so errors read naturally.
func itemField(list Field) Field {
	if list.Item == nil {
		return Field{Name: list.Name, Kind: KindText, Required: true}
	}
	item := *list.Item
	if item.Name == "" {
		item.Name = list.Name
	}
	return item
}

func asMap(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case Value:
		return v, true
	default:
		return nil, false
	}
}

func toText(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "yes", "1":
			return true, true
		case "false", "off", "no", "0", "":
			return false, true
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case json.Number:
		return toBool(v.String())
	}
	return false, false
}

func toImageRef(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return "", false
		}
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && urlSchemes[strings.ToLower(u.Scheme)] && u.Host != ""
}

func describe(raw any) string {
	switch raw.(type) {
	case bool:
		return "boolean"
	case map[string]any, Value:
		return "object"
	case []any:
		return "list"
	case string:
		return "text"
	case float64, int, int64, uint64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
