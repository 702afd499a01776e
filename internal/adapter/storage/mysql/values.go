package mysql

import (
	"strconv"
	"strings"
)

// normalizeValue turns raw text-protocol bytes into the Go value a caller
// expects for the column type. Non-byte values pass through unchanged.
func normalizeValue(v any, dbType string) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)

	typ := strings.ToUpper(dbType)
	unsigned := strings.HasPrefix(typ, "UNSIGNED ")
	typ = strings.TrimPrefix(typ, "UNSIGNED ")

	switch typ {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT", "YEAR":
		if unsigned {
			if n, err := strconv.ParseUint(s, 10, 64); err == nil {
				return n
			}
			return s
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case "FLOAT", "DOUBLE":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	// DECIMAL stays a string to keep its precision.
	return s
}
