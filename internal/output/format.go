package output

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO date format used for every date column
const DateLayout = "2006-01-02"

// FormatValue renders a single cell for text output. Decimals keep the
// number of places they were rounded to, zero dates render empty.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return FormatBool(x)
	case decimal.Decimal:
		return FormatDecimal(x)
	case time.Time:
		return FormatDate(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// FormatRow renders every cell of a row
func FormatRow(values []any) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = FormatValue(v)
	}
	return row
}

// FormatDecimal prints d with exactly as many fractional digits as its
// exponent carries, so Round(2) amounts always show two places.
func FormatDecimal(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}

// FormatBool converts a boolean to "1" or "0" for CSV/database compatibility
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatDate formats a time.Time as YYYY-MM-DD, returning empty string for the zero time
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatBytes renders a byte count the way the run summary reports sizes
func FormatBytes(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
}
