// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultDateFormat renders dates as ISO 8601 calendar dates.
const DefaultDateFormat = "%Y-%m-%d"

// DateRange is the inclusive span of years a synthetic date may fall in.
type DateRange struct {
	FirstYear int
	LastYear  int
}

// AgeRange converts an anchor year and an age window into years of birth.
func AgeRange(anchorYear, minAge, maxAge int) (DateRange, error) {
	if minAge < 0 || maxAge < 0 {
		return DateRange{}, fmt.Errorf("%w: ages must not be negative (min %d, max %d)", ErrInvalidRange, minAge, maxAge)
	}
	if minAge > maxAge {
		return DateRange{}, fmt.Errorf("%w: min age %d exceeds max age %d", ErrInvalidRange, minAge, maxAge)
	}
	return DateRange{FirstYear: anchorYear - maxAge, LastYear: anchorYear - minAge}, nil
}

// DateTime picks a calendar day within r: first a year over the whole range,
// then a day over the length of that year.
func (e Engine) DateTime(id Identity, r DateRange) (time.Time, error) {
	if r.FirstYear > r.LastYear {
		return time.Time{}, fmt.Errorf("%w: first year %d after last year %d", ErrInvalidRange, r.FirstYear, r.LastYear)
	}
	pool, err := e.Pool(id)
	if err != nil {
		return time.Time{}, err
	}
	defer pool.Wipe()

	offset, err := pool.Draw(r.LastYear - r.FirstYear + 1)
	if err != nil {
		return time.Time{}, err
	}
	year := r.FirstYear + offset
	day, err := pool.Draw(daysIn(year))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day), nil
}

// Date is DateTime for an age window, rendered with a strftime template.
// An empty format selects DefaultDateFormat.
func (e Engine) Date(id Identity, anchorYear, minAge, maxAge int, format string) (string, error) {
	r, err := AgeRange(anchorYear, minAge, maxAge)
	if err != nil {
		return "", err
	}
	t, err := e.DateTime(id, r)
	if err != nil {
		return "", err
	}
	if format == "" {
		format = DefaultDateFormat
	}
	return strftime.Format(format, t), nil
}

func daysIn(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
