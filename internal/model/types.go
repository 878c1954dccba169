package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"spbu-monitor-backend/internal/parse"
)

// Decimal is a numeric value that the upstream API may send either as a JSON
// number or as a decimal string ("20000.00"). Unparseable values decode as 0.
type Decimal float64

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := parse.Decimal(s)
		if err != nil {
			*d = 0
			return nil
		}
		*d = Decimal(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*d = 0
		return nil
	}
	*d = Decimal(v)
	return nil
}

// Float64 returns d as a float64.
func (d Decimal) Float64() float64 { return float64(d) }

// String formats d without trailing zeros.
func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

// Timestamp is an upstream date that may be missing or malformed. Zone-less
// values keep their wall clock and are placed into a location by In.
type Timestamp struct {
	Time  time.Time
	Valid bool
	zoned bool
}

// NewTimestamp wraps t as a valid, zoned timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true, zoned: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	*ts = Timestamp{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Non-string dates are treated as absent rather than failing the whole record.
		return nil
	}
	t, err := parse.Timestamp(s, time.UTC)
	if err != nil {
		return nil
	}
	ts.Time = t
	ts.Valid = true
	ts.zoned = hasZone(s)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Time.Format(time.RFC3339))
}

// In returns the instant in loc. Zone-less values are interpreted as wall clock in loc.
func (ts Timestamp) In(loc *time.Location) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if ts.zoned {
		return ts.Time.In(loc)
	}
	t := ts.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// After reports whether ts is strictly later than other when both are seen
// in loc. Invalid timestamps are earlier than any valid one.
func (ts Timestamp) After(other Timestamp, loc *time.Location) bool {
	switch {
	case !ts.Valid:
		return false
	case !other.Valid:
		return true
	}
	return ts.In(loc).After(other.In(loc))
}

func hasZone(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	return err == nil
}
