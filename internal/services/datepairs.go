package services

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DatePairSeparator joins a departure and a return date into one scan key.
const DatePairSeparator = ">"

// GenerateDatePairs builds the 7x7 calendar grid around a pivot pair: day
// offsets -3..+3 applied independently to the departure and return dates,
// serialized as "YYYY-MM-DD>YYYY-MM-DD".
func GenerateDatePairs(departureDate, returnDate string) ([]string, error) {
	depart, err := time.Parse(dateLayout, departureDate)
	if err != nil {
		return nil, fmt.Errorf("parse departure date %q: %w", departureDate, err)
	}

	ret, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return nil, fmt.Errorf("parse return date %q: %w", returnDate, err)
	}

	pairs := make([]string, 0, 49)
	for departOffset := -3; departOffset <= 3; departOffset++ {
		for returnOffset := -3; returnOffset <= 3; returnOffset++ {
			pairs = append(pairs,
				depart.AddDate(0, 0, departOffset).Format(dateLayout)+
					DatePairSeparator+
					ret.AddDate(0, 0, returnOffset).Format(dateLayout))
		}
	}

	return pairs, nil
}

// SplitDatePair breaks a "YYYY-MM-DD>YYYY-MM-DD" key back into its dates.
func SplitDatePair(pair string) (departureDate, returnDate string, ok bool) {
	return strings.Cut(pair, DatePairSeparator)
}
