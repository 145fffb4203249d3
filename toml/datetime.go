package toml

import "fmt"

// Datetime carries the full RFC-3339 subset this package supports: a
// complete date and time plus a UTC offset. There is no local-date or
// local-time variant in this data model — every Datetime a parse
// produces has all of year/month/day/hour/minute/second and an offset
// (the parser rejects anything less, see parseDatetimeToken).
type Datetime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Microsecond          int

	// HasOffset distinguishes a genuine UTC offset of zero ("Z") from a
	// value built without one (e.g. via NewDatetime, bypassing the
	// parser). OffsetMinutes is the offset east of UTC in minutes and is
	// meaningless when HasOffset is false.
	HasOffset     bool
	OffsetMinutes int
}

// String renders dt back into its canonical RFC-3339 textual form, used
// by the printer (component E).
func (dt Datetime) String() string {
	out := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	if dt.Microsecond > 0 {
		out += fmt.Sprintf(".%06d", dt.Microsecond)
	}
	if dt.HasOffset {
		if dt.OffsetMinutes == 0 {
			out += "Z"
		} else {
			sign := "+"
			m := dt.OffsetMinutes
			if m < 0 {
				sign = "-"
				m = -m
			}
			out += fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
		}
	}
	return out
}

// Equal reports whether dt and other describe the same instant/fields.
// Provided for tests comparing parsed trees with go-cmp, which otherwise
// has no notion of equivalence for a plain struct beyond field-by-field
// comparison (which is exactly what this does, spelled out for clarity
// at call sites that don't want to pull in an Options value).
func (dt Datetime) Equal(other Datetime) bool {
	return dt == other
}
