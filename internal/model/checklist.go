package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChecklistItem is a single checklist entry. Only the date and the reporting
// user are common to every category; the remaining keys are kept in Fields.
type ChecklistItem struct {
	ID     int64
	Date   Timestamp
	UserID int64
	Fields map[string]any
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ChecklistItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode checklist item: %w", err)
	}

	item := ChecklistItem{Fields: make(map[string]any, len(raw))}
	for key, value := range raw {
		switch key {
		case "id":
			if err := json.Unmarshal(value, &item.ID); err != nil {
				return fmt.Errorf("decode checklist id: %w", err)
			}
		case "tanggal":
			if err := json.Unmarshal(value, &item.Date); err != nil {
				return err
			}
		case "userId":
			// A null reporter leaves UserID at zero.
			_ = json.Unmarshal(value, &item.UserID)
		default:
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return fmt.Errorf("decode checklist field %q: %w", key, err)
			}
			item.Fields[key] = v
		}
	}
	*c = item
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the flat upstream shape.
func (c ChecklistItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Fields)+3)
	for k, v := range c.Fields {
		out[k] = v
	}
	out["id"] = c.ID
	out["tanggal"] = c.Date
	out["userId"] = c.UserID
	return json.Marshal(out)
}

// Text returns the field as a trimmed string. Missing, null and empty values yield "".
func (c ChecklistItem) Text(key string) string {
	v, ok := c.Fields[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case bool:
		if !t {
			return ""
		}
	case float64:
		if t == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
