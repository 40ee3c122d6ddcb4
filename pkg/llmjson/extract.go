// Package llmjson recovers a single JSON object from free-form LLM output.
//
// The object is located by slicing from the first '{' to the last '}'. This is
// not a balanced-brace scan: commentary after the real object that itself
// contains a '}' will be swallowed into the slice and break parsing.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

var (
	ErrNoJSONFound       = errors.New("no JSON object found in model response")
	ErrMalformedResponse = errors.New("malformed JSON in model response")
	// ErrUnexpectedShape means the JSON parsed but a field has a type the
	// target cannot hold.
	ErrUnexpectedShape = errors.New("model response has unexpected shape")
)

const maxFragmentInError = 512

// MalformedError carries the substring that failed to parse.
type MalformedError struct {
	Fragment string
	Cause    error
}

func (e *MalformedError) Error() string {
	frag := e.Fragment
	if len(frag) > maxFragmentInError {
		frag = frag[:maxFragmentInError] + "..."
	}
	return fmt.Sprintf("%v: %v (fragment: %q)", ErrMalformedResponse, e.Cause, frag)
}

func (e *MalformedError) Unwrap() []error { return []error{ErrMalformedResponse, e.Cause} }

// Slice returns the text between the first '{' and the last '}' inclusive.
func Slice(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < 0 || end <= start {
		return "", ErrNoJSONFound
	}
	return text[start : end+1], nil
}

// Decode extracts the object from text and unmarshals it into v.
// A strict parse is tried first; on failure the fragment is parsed as JSON5,
// which accepts unquoted or single-quoted keys, single-quoted strings,
// trailing commas and comments.
func Decode(text string, v any) error {
	fragment, err := Slice(text)
	if err != nil {
		return err
	}
	strictErr := json.Unmarshal([]byte(fragment), v)
	if strictErr == nil {
		return nil
	}
	// encoding/json validates the whole document before decoding, so a type
	// error means the syntax was fine.
	if isShapeError(strictErr) {
		return fmt.Errorf("%w: %w", ErrUnexpectedShape, strictErr)
	}
	if err := decodeTolerant(fragment, v); err != nil {
		if isShapeError(err) {
			return fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
		}
		return &MalformedError{Fragment: fragment, Cause: strictErr}
	}
	return nil
}

func isShapeError(err error) bool {
	var te *json.UnmarshalTypeError
	return errors.As(err, &te)
}

// Extract is Decode into a generic object.
func Extract(text string) (map[string]any, error) {
	var out map[string]any
	if err := Decode(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeTolerant round-trips through a generic value so the caller's struct
// tags are applied by encoding/json, exactly as on the strict path.
func decodeTolerant(fragment string, v any) error {
	var generic any
	if err := json5.Unmarshal([]byte(fragment), &generic); err != nil {
		return err
	}
	normalized, err := json.Marshal(generic)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, v)
}
