// Package forecast holds the canned weather table backing the get_weather tool.
//
// The table is fixed at compile time and keyed by (location, date). Location
// matching is a case-insensitive substring test so that "San Francisco, CA"
// and "san francisco" resolve to the same entry; dates match exactly.
package forecast

import (
	"fmt"
	"strings"
	"time"
)

// ReferenceDate is the frozen "today" the table reports detailed conditions
// for. Queries for a known location on any other date get that location's
// no-data line instead.
const ReferenceDate = "2025-06-19"

// DateLayout is the only accepted date syntax for lookups.
const DateLayout = "2006-01-02"

// entry describes one known location.
type entry struct {
	key        string // lowercase substring matched against the query location
	conditions string // conditions on ReferenceDate, formatted with location and date
	noData     string // returned for any other date, formatted with location and date
}

var table = []entry{
	{
		key:        "san francisco",
		conditions: "The weather in %s today (%s) is sunny with a temperature of 70°F.",
		noData:     "I don't have historical/future weather data for %s on %s. But San Francisco is generally mild.",
	},
	{
		key:        "new york",
		conditions: "The weather in %s today (%s) is cloudy with a temperature of 65°F with a chance of rain.",
		noData:     "I don't have historical/future weather data for %s on %s. New York can be unpredictable.",
	},
	{
		key:        "mason, ohio",
		conditions: "The weather in %s today (%s) is 75°F and partly cloudy.",
		noData:     "I don't have historical/future weather data for %s on %s.",
	},
}

// Lookup returns the canned report for a location and date. Unknown locations
// get a generic fallback naming the location; known locations on dates other
// than ReferenceDate get their no-data line.
func Lookup(location, date string) string {
	lower := strings.ToLower(location)
	for _, e := range table {
		if !strings.Contains(lower, e.key) {
			continue
		}
		if date == ReferenceDate {
			return fmt.Sprintf(e.conditions, location, date)
		}
		return fmt.Sprintf(e.noData, location, date)
	}
	return fmt.Sprintf("Sorry, I don't have weather information for %s.", location)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
// Malformed dates are rejected before lookup rather than falling through to
// the generic fallback.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	// time.Parse tolerates some normalisation; require the round trip to be exact.
	return t.Format(DateLayout) == s
}
