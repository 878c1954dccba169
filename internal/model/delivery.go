package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const volumeKeyPrefix = "volume"

// ProductVolume is the delivered volume of one product.
type ProductVolume struct {
	Product string  `json:"product"`
	Liters  Decimal `json:"liters"`
}

// StockDelivery is a fuel stock delivery. The upstream record carries one
// "volume<Product>" key per product; Volumes keeps them in emitted order.
type StockDelivery struct {
	ID        int64           `json:"id"`
	CreatedAt Timestamp       `json:"createdAt"`
	Volumes   []ProductVolume `json:"volumes"`
}

// UnmarshalJSON implements json.Unmarshaler. Keys are walked as tokens so that
// the product order from the payload survives.
func (d *StockDelivery) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode stock delivery: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode stock delivery: expected object, got %v", tok)
	}

	var out StockDelivery
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode stock delivery key: %w", err)
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode stock delivery field %q: %w", key, err)
		}

		switch {
		case key == "id":
			if err := json.Unmarshal(value, &out.ID); err != nil {
				return fmt.Errorf("decode stock delivery id: %w", err)
			}
		case key == "createdAt":
			if err := json.Unmarshal(value, &out.CreatedAt); err != nil {
				return err
			}
		case strings.HasPrefix(key, volumeKeyPrefix) && len(key) > len(volumeKeyPrefix):
			var liters Decimal
			if err := json.Unmarshal(value, &liters); err != nil {
				return err
			}
			out.Volumes = append(out.Volumes, ProductVolume{
				Product: strings.TrimPrefix(key, volumeKeyPrefix),
				Liters:  liters,
			})
		}
	}
	*d = out
	return nil
}
