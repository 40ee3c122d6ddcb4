package llmjson

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text is a string field the model may fill with any JSON value. Numbers and
// booleans keep their literal form, arrays are joined one item per line and
// objects are kept as compact JSON. null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := textOf(bytes.TrimSpace(b))
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func (t Text) String() string { return string(t) }

func textOf(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	switch b[0] {
	case 'n':
		return "", nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return "", err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			s, err := textOf(bytes.TrimSpace(item))
			if err != nil {
				return "", err
			}
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n"), nil
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		// numbers and true/false
		var v json.RawMessage
		if err := json.Unmarshal(b, &v); err != nil {
			return "", err
		}
		return string(v), nil
	}
}
