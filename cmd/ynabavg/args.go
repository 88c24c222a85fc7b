package main

import (
	"fmt"
	"strconv"
	"time"
)

const defaultMonths = 12

// parseMonths converts positional arguments into month counts. With no
// arguments a single 12 month window is used.
func parseMonths(args []string) ([]int, error) {
	if len(args) == 0 {
		return []int{defaultMonths}, nil
	}
	months := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid month count %q: must be a whole number", arg)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid month count %d: must be at least 1", n)
		}
		months = append(months, n)
	}
	return months, nil
}

// referenceDate returns the date windows are derived from: asOf when given,
// the current time otherwise.
func referenceDate(asOf string, now func() time.Time) (time.Time, error) {
	if asOf == "" {
		return now(), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, asOf, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q: %w", asOf, err)
	}
	return d, nil
}
