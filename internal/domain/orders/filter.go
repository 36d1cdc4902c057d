package orders

import "strings"

// Filter selects orders. Zero-value fields match everything.
type Filter struct {
	Month  string
	Status Status
	Query  string
}

// Apply returns the orders matching every set filter field, in input order.
// Month matches the year-month prefix of the event date; the free-text query
// matches case-insensitively against customer name, phone, event type and notes.
func Apply(list []Order, f Filter) []Order {
	query := strings.ToLower(f.Query)
	matched := make([]Order, 0, len(list))
	for _, o := range list {
		if f.Month != "" && o.MonthKey() != f.Month {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if query != "" && !matchesQuery(query, o.CustomerName, o.Phone, o.EventType, o.Notes) {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}

func matchesQuery(lowerQuery string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
