package block

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a validation failure.
type Code string

const (
	CodeMissingRequiredField Code = "missing_required_field"
	CodeLengthExceeded       Code = "length_exceeded"
	CodeInvalidChoice        Code = "invalid_choice"
	CodeTypeMismatch         Code = "type_mismatch"
	CodeUnknownBlockType     Code = "unknown_block_type"
	CodeItemCount            Code = "item_count"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrLengthExceeded       = errors.New("length exceeded")
	ErrInvalidChoice        = errors.New("invalid choice")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnknownBlockType     = errors.New("unknown block type")
	ErrItemCount            = errors.New("item count out of range")
)

var sentinels = map[Code]error{
	CodeMissingRequiredField: ErrMissingRequiredField,
	CodeLengthExceeded:       ErrLengthExceeded,
	CodeInvalidChoice:        ErrInvalidChoice,
	CodeTypeMismatch:         ErrTypeMismatch,
	CodeUnknownBlockType:     ErrUnknownBlockType,
	CodeItemCount:            ErrItemCount,
}

// ValidationError reports one offending value.
// Path locates the value from the root of the submission, e.g. "[0].services_list[2].title".
type ValidationError struct {
	Path    string `json:"path"`
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap lets errors.Is match the sentinel for the error's code.
func (e ValidationError) Unwrap() error {
	return sentinels[e.Code]
}

// Errors is the complete set of failures found in one submission.
type Errors []ValidationError

func (es Errors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (es Errors) Unwrap() []error {
	out := make([]error, 0, len(es))
	for _, e := range es {
		out = append(out, e)
	}
	return out
}

// Has reports whether a failure with code exists at path.
func (es Errors) Has(code Code, path string) bool {
	for _, e := range es {
		if e.Code == code && e.Path == path {
			return true
		}
	}
	return false
}

// Codes returns the code of every failure in order.
func (es Errors) Codes() []Code {
	codes := make([]Code, 0, len(es))
	for _, e := range es {
		codes = append(codes, e.Code)
	}
	return codes
}

// AsErrors extracts the validation set carried by err, if any.
func AsErrors(err error) (Errors, bool) {
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

func (es *Errors) add(path, field string, code Code, format string, args ...any) {
	*es = append(*es, ValidationError{
		Path:    path,
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// prefixed returns a copy of es with every path rooted under prefix.
func (es Errors) prefixed(prefix string) Errors {
	out := make(Errors, 0, len(es))
	for _, e := range es {
		e.Path = joinPath(prefix, e.Path)
		out = append(out, e)
	}
	return out
}

func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}
