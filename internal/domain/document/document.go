package document

import (
	"encoding/json"
	"math"
	"strconv"
)

// IDField is the only key the server interprets.
const IDField = "id"

// Document is a JSON object with arbitrary fields.
type Document map[string]interface{}

// ID returns the raw id value, or nil when the document has none.
func (d Document) ID() interface{} {
	if d == nil {
		return nil
	}
	return d[IDField]
}

// IntID returns the id as an integer. Fractional, non-numeric and absent ids report false.
func (d Document) IntID() (int64, bool) {
	switch v := d.ID().(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// StringID returns the id when it is a string.
func (d Document) StringID() (string, bool) {
	s, ok := d.ID().(string)
	return s, ok
}

// Merge returns a copy of d with every top-level key of patch written over it.
func (d Document) Merge(patch Document) Document {
	merged := make(Document, len(d)+len(patch))
	for k, v := range d {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	return d.Merge(nil)
}
