package diligentdate

import (
	"diligentdate/oops"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Moment is a parsed calendar date with optional time of day and optional
// UTC offset. Fields without a matching IsSet flag are always present.
// Absent time fields are not midnight and an absent offset is not UTC; they
// mean the input carried no such information.
type Moment struct {
	Year  int
	Month time.Month
	Day   int

	Hour            int
	HourIsSet       bool
	Minute          int
	MinuteIsSet     bool
	Second          int
	SecondIsSet     bool
	Nanosecond      int
	NanosecondIsSet bool

	Offset      int // minutes east of UTC
	OffsetIsSet bool
}

// TwoDigitYearPivot splits two-digit years between centuries: values below
// it land in 2000-2068, values at or above it land in 1969-1999.
const TwoDigitYearPivot = 69

func expandTwoDigitYear(year int) int {
	if year >= TwoDigitYearPivot {
		return year + 1900
	}
	return year + 2000
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

const minutesPerDay = 24 * 60

func buildMoment(c capture) (Moment, bool) {
	year := c.year
	if c.yearWidth == 2 {
		year = expandTwoDigitYear(year)
	}

	if c.month < 1 || c.month > 12 {
		return Moment{}, false
	}
	maxDay := daysInMonth[c.month]
	if time.Month(c.month) == time.February && isLeapYear(year) {
		maxDay = 29
	}
	if c.day < 1 || c.day > maxDay {
		return Moment{}, false
	}
	if c.hourIsSet && c.hour > 23 {
		return Moment{}, false
	}
	if c.minuteIsSet && c.minute > 59 {
		return Moment{}, false
	}
	if c.secondIsSet && c.second > 59 {
		return Moment{}, false
	}
	if c.offsetIsSet && (c.offset < -minutesPerDay || c.offset >= minutesPerDay) {
		return Moment{}, false
	}

	// The clock fields must form a prefix. A pattern can structurally match
	// a later field while skipping an earlier one ("2025-06-18:30"), and
	// an offset with no time of day is noise rather than a date.
	if c.minuteIsSet && !c.hourIsSet {
		return Moment{}, false
	}
	if c.secondIsSet && !c.minuteIsSet {
		return Moment{}, false
	}
	if c.nanosecondIsSet && !c.secondIsSet {
		return Moment{}, false
	}
	if c.offsetIsSet && !c.hourIsSet {
		return Moment{}, false
	}

	return Moment{
		Year:            year,
		Month:           time.Month(c.month),
		Day:             c.day,
		Hour:            c.hour,
		HourIsSet:       c.hourIsSet,
		Minute:          c.minute,
		MinuteIsSet:     c.minuteIsSet,
		Second:          c.second,
		SecondIsSet:     c.secondIsSet,
		Nanosecond:      c.nanosecond,
		NanosecondIsSet: c.nanosecondIsSet,
		Offset:          c.offset,
		OffsetIsSet:     c.offsetIsSet,
	}, true
}

// String renders the moment with exactly the precision it carries, so that
// parsing the output yields an equal Moment: "2025-06-18", "2014-01-08T13",
// "2025-06-18T10:30:00.5+02:00" and so on. A zero offset renders as "Z".
func (m Moment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02d", m.Year, m.Month, m.Day)
	if m.HourIsSet {
		fmt.Fprintf(&b, "T%02d", m.Hour)
	}
	if m.MinuteIsSet {
		fmt.Fprintf(&b, ":%02d", m.Minute)
	}
	if m.SecondIsSet {
		fmt.Fprintf(&b, ":%02d", m.Second)
	}
	if m.NanosecondIsSet {
		frac := strings.TrimRight(fmt.Sprintf("%09d", m.Nanosecond), "0")
		if frac == "" {
			frac = "0"
		}
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if m.OffsetIsSet {
		b.WriteString(formatOffset(m.Offset))
	}
	return b.String()
}

func formatOffset(minutes int) string {
	if minutes == 0 {
		return "Z"
	}
	sign := byte('+')
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

// Equal reports whether both moments carry the same fields with the same
// values, presence included.
func (m Moment) Equal(other Moment) bool {
	return m == other
}

// Time converts fully specified moments, ones that carry at least hour,
// minute, second and an offset. Anything less would need invented defaults,
// so ok is false for those.
func (m Moment) Time() (time.Time, bool) {
	if !m.HourIsSet || !m.MinuteIsSet || !m.SecondIsSet || !m.OffsetIsSet {
		return time.Time{}, false
	}
	loc := time.UTC
	if m.Offset != 0 {
		loc = time.FixedZone(formatOffset(m.Offset), m.Offset*60)
	}
	nanosecond := 0
	if m.NanosecondIsSet {
		nanosecond = m.Nanosecond
	}
	return time.Date(m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second, nanosecond, loc), true
}

// MarshalJSON renders the canonical string form.
func (m Moment) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts any string Parse accepts, not just the canonical
// form.
func (m *Moment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return oops.Wrap(err)
	}
	moment, ok := Parse(str)
	if !ok {
		return oops.Newf("not a recognized date: %q", str)
	}
	*m = moment
	return nil
}
