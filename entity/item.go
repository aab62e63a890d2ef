package entity

import (
	"fmt"
	"strconv"
)

// Record is a single JSON object flowing into or out of the node.
type Record map[string]interface{}

// NewRecord turns a decoded JSON value into a Record. Objects pass through,
// anything else is wrapped under "data".
func NewRecord(v interface{}) Record {
	switch t := v.(type) {
	case map[string]interface{}:
		return Record(t)
	case Record:
		return t
	case nil:
		return Record{}
	default:
		return Record{"data": t}
	}
}

// String returns the value under key as text, or "" when absent or not a scalar.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Item is a record together with the index of the input record it came from.
type Item struct {
	JSON       Record `json:"json"`
	PairedItem int    `json:"pairedItem"`
}

func NewErrorItem(err error, index int) Item {
	return Item{
		JSON:       Record{"error": err.Error()},
		PairedItem: index,
	}
}
