// Package appledate parses the date strings Apple writes to the
// "Photo Details" sidecar CSVs of an iCloud photo export, e.g.
// "Saturday September 16,2023 5:27 PM GMT".
package appledate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// layout matches the middle of the vendor string after the weekday and
// timezone tokens are stripped: "September 16,2023 5:27 PM".
const layout = "January 2,2006 3:04 PM"

// ErrUnparseable indicates that a date string does not follow the
// expected export format.
var ErrUnparseable = errors.New("unparseable date")

// Parse converts a vendor-formatted date string into a UTC instant.
//
// The format is "<weekday> <month> <day>,<year> <hour>:<minute> <AM/PM>
// <tz>". The leading weekday and trailing timezone abbreviation are
// stripped and the remainder is parsed with a fixed layout. The export
// always records GMT, so the result is interpreted as UTC.
//
// Malformed input returns a wrapped ErrUnparseable; callers are
// expected to log it once and continue without a capture time.
func Parse(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}

	// Drop the weekday and the timezone abbreviation.
	middle := strings.Join(fields[1:len(fields)-1], " ")

	t, err := time.ParseInLocation(layout, middle, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnparseable, s, err)
	}
	return t, nil
}
