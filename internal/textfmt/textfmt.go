// Package textfmt renders resume values as short display strings. The
// template builders and the direct PDF engine share these helpers so the
// output formats cannot drift apart.
package textfmt

import (
	"fmt"
	"strings"
	"time"
)

// YearMonth renders a YYYY-MM date as "Jan 2006"; anything else (like a
// bare graduation year) passes through untouched
func YearMonth(s string) string {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}

// DateRange renders a position's date range; a nil end date reads
// "Present"
func DateRange(start string, end *string) string {
	if end == nil {
		return YearMonth(start) + " - Present"
	}
	return YearMonth(start) + " - " + YearMonth(*end)
}

// Phone renders +1-XXX-XXX-XXXX as (XXX) XXX-XXXX; other formats pass
// through untouched
func Phone(phone string) string {
	trimmed := strings.TrimPrefix(phone, "+1-")
	parts := strings.Split(trimmed, "-")
	if len(parts) == 3 && strings.HasPrefix(phone, "+1-") {
		return fmt.Sprintf("(%s) %s-%s", parts[0], parts[1], parts[2])
	}
	return phone
}

// URL strips the scheme and www prefix for display text
func URL(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	return strings.TrimSuffix(url, "/")
}
