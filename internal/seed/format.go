// Package seed loads fixture datasets into the store: records are decoded
// from JSON, normalised, turned into tuples ordered by each table's schema
// and bulk-inserted.
package seed

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Record is one fixture row keyed by column name
type Record map[string]any

// FormatData turns records into value tuples ordered by keys. A key missing
// from a record yields nil in that position. The input is not modified.
func FormatData(records []Record, keys []string) [][]any {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(keys))
		for i, key := range keys {
			row[i] = rec[key]
		}
		rows = append(rows, row)
	}
	return rows
}

// AddKeys returns copies of records where out[i][key] is source[i][key]
// minus one. source must be as long as records and its key values numeric.
func AddKeys(records []Record, key string, source []Record) ([]Record, error) {
	if len(records) != len(source) {
		return nil, fmt.Errorf("add keys: %d records but %d sources", len(records), len(source))
	}

	out := make([]Record, len(records))
	for i, rec := range records {
		n, err := toInt(source[i][key])
		if err != nil {
			return nil, fmt.Errorf("add keys: source %d %q: %w", i, key, err)
		}
		c := rec.clone()
		c[key] = n - 1
		out[i] = c
	}
	return out, nil
}

// ConvertTimestamps returns copies of records whose key holds epoch
// milliseconds, replaced by the corresponding UTC time. Records without
// the key are copied unchanged.
func ConvertTimestamps(records []Record, key string) ([]Record, error) {
	out := make([]Record, len(records))
	for i, rec := range records {
		c := rec.clone()
		if v, ok := rec[key]; ok && v != nil {
			if _, isTime := v.(time.Time); !isTime {
				ms, err := toInt(v)
				if err != nil {
					return nil, fmt.Errorf("convert timestamps: record %d %q: %w", i, key, err)
				}
				c[key] = time.UnixMilli(int64(ms)).UTC()
			}
		}
		out[i] = c
	}
	return out, nil
}

// SetDefault returns copies of records with key set to value wherever it is
// absent or null
func SetDefault(records []Record, key string, value any) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		c := rec.clone()
		if c[key] == nil {
			c[key] = value
		}
		out[i] = c
	}
	return out
}

func (r Record) clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("%v (%T) is not numeric", v, v)
	}
}
