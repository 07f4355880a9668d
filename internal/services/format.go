package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Upstream segment timestamps are local times without a zone designator.
const timestampLayout = "2006-01-02T15:04:05"

// TitleCase normalizes the upstream's all-caps city and airport names.
// Each word after a space or hyphen is capitalized with the rest lowered;
// separators are kept as-is ("NEW YORK CITY" -> "New York City",
// "SAINT-LOUIS" -> "Saint-Louis").
func TitleCase(s string) string {
	runes := []rune(s)
	wordStart := true

	for i, r := range runes {
		switch {
		case r == ' ' || r == '-':
			wordStart = true
		case wordStart:
			runes[i] = unicode.ToUpper(r)
			wordStart = false
		default:
			runes[i] = unicode.ToLower(r)
		}
	}

	return string(runes)
}

// FormatDuration renders an ISO-8601 duration token ("PT2H30M") as a display
// string ("2 h 30 min"). A zero component still renders when the other unit
// is present; a token with neither unit is returned unchanged.
func FormatDuration(iso string) string {
	rest := strings.TrimPrefix(iso, "PT")

	hours, minutes := -1, -1
	if i := strings.IndexByte(rest, 'H'); i >= 0 {
		if h, err := strconv.Atoi(rest[:i]); err == nil {
			hours = h
		}
		rest = rest[i+1:]
	}
	if i := strings.IndexByte(rest, 'M'); i >= 0 {
		if m, err := strconv.Atoi(rest[:i]); err == nil {
			minutes = m
		}
	}

	switch {
	case hours >= 0 && minutes >= 0:
		return fmt.Sprintf("%d h %d min", hours, minutes)
	case hours >= 0:
		return fmt.Sprintf("%d h", hours)
	case minutes >= 0:
		return fmt.Sprintf("%d min", minutes)
	}

	return iso
}

// LayoverDuration computes the ground time between one segment's arrival and
// the next segment's departure as whole hours plus remainder minutes.
func LayoverDuration(arrivalAt, nextDepartureAt string) (string, error) {
	arrive, err := time.Parse(timestampLayout, arrivalAt)
	if err != nil {
		return "", fmt.Errorf("parse arrival %q: %w", arrivalAt, err)
	}

	depart, err := time.Parse(timestampLayout, nextDepartureAt)
	if err != nil {
		return "", fmt.Errorf("parse departure %q: %w", nextDepartureAt, err)
	}

	gap := depart.Sub(arrive)
	hours := int(gap.Hours())
	minutes := int(gap.Minutes()) % 60

	return fmt.Sprintf("%d h %d min", hours, minutes), nil
}

// FormatPrice renders an upstream decimal amount with its currency code.
func FormatPrice(amount, currency string) string {
	return amount + " " + currency
}
