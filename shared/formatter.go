package shared

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FormatValueForDisplay formats evaluator values for display across the
// engine and the REPL. This centralizes the display logic so that print
// statements and the interactive prompt render values identically.
func FormatValueForDisplay(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"

	case float64:
		// The evaluator hands back every number as float64. Integral values
		// print without a decimal point or scientific notation.
		if !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)

	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", value)

	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)

	case bool:
		return strconv.FormatBool(v)

	case string:
		return v

	case []interface{}:
		// Sequences display in the source-level list form: [1, 2, 3]
		var items []string
		for _, item := range v {
			items = append(items, formatSequenceItem(item))
		}
		return "[" + strings.Join(items, ", ") + "]"

	case map[string]interface{}:
		// Keyed tables display with sorted keys for stable output
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var items []string
		for _, key := range keys {
			items = append(items, key+": "+formatSequenceItem(v[key]))
		}
		return "{" + strings.Join(items, ", ") + "}"

	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatSequenceItem formats a value nested inside a sequence or table.
// Strings are quoted there, unlike at the top level.
func formatSequenceItem(value interface{}) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return FormatValueForDisplay(value)
}
