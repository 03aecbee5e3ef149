package diligentdate

import "strings"

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func digitSpan(str string, start int) int {
	span := 0
	for start+span < len(str) && isDigit(str[start+span]) {
		span++
	}
	return span
}

func n2i(str string, start, length int) int {
	end := start + length
	result := 0
	for i := start; i < end; i++ {
		result *= 10
		result += int(str[i] - '0')
	}
	return result
}

type classFlags int

const (
	classFlagHaveAlpha classFlags = 1 << iota
	classFlagHaveDigit
	classFlagHaveDash
	classFlagHaveDot
	classFlagHaveSlash
	classFlagHaveColon
)

func checkClass(str string) classFlags {
	var flags classFlags
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case isAlpha(c):
			flags |= classFlagHaveAlpha
		case isDigit(c):
			flags |= classFlagHaveDigit
		case c == '-':
			flags |= classFlagHaveDash
		case c == '.':
			flags |= classFlagHaveDot
		case c == '/':
			flags |= classFlagHaveSlash
		case c == ':':
			flags |= classFlagHaveColon
		}
	}
	return flags
}

type fieldTarget uint8

const (
	targetYear fieldTarget = iota
	targetMonth
	targetDay
	targetHour
	targetMinute
	targetSecond
)

type fieldKind uint8

const (
	fieldLit fieldKind = iota
	fieldNum
	fieldMonthName
	fieldFraction
	fieldOffset
)

type field struct {
	kind     fieldKind
	lit      string
	optional bool // literals only: an absent separator is fine
	minWidth int
	maxWidth int
	target   fieldTarget
	ordinal  bool // day fields only: tolerate an st/nd/rd/th suffix
}

type segment struct {
	optional bool
	fields   []field
}

type pattern struct {
	name     string
	classes  classFlags
	segments []segment
}

// capture holds the numeric values a structural match extracts. Year, month
// and day are set by every pattern in the table; the rest carry flags.
type capture struct {
	year      int
	yearWidth int
	month     int
	day       int

	hour        int
	hourIsSet   bool
	minute      int
	minuteIsSet bool
	second      int
	secondIsSet bool

	nanosecond      int
	nanosecondIsSet bool

	offset      int
	offsetIsSet bool
}

// match aligns the input with the pattern's fields. Optional segments get a
// single attempt at the current position and are skipped when they don't
// fit; the scan never rewinds past a committed segment. Leftover input
// rejects the whole pattern.
func (p *pattern) match(str string) (capture, bool) {
	var c capture
	pos := 0
	for i := range p.segments {
		seg := &p.segments[i]
		if seg.optional {
			trial := c
			next, ok := seg.scan(str, pos, &trial)
			if ok {
				c = trial
				pos = next
			}
			continue
		}
		var ok bool
		pos, ok = seg.scan(str, pos, &c)
		if !ok {
			return capture{}, false
		}
	}
	if pos != len(str) {
		return capture{}, false
	}
	return c, true
}

func (s *segment) scan(str string, pos int, c *capture) (int, bool) {
	for i := range s.fields {
		next, ok := s.fields[i].scan(str, pos, c)
		if !ok {
			return 0, false
		}
		pos = next
	}
	return pos, true
}

func (f *field) scan(str string, pos int, c *capture) (int, bool) {
	switch f.kind {
	case fieldLit:
		return f.scanLit(str, pos)
	case fieldNum:
		return f.scanNum(str, pos, c)
	case fieldMonthName:
		return scanMonthName(str, pos, c)
	case fieldFraction:
		return scanFraction(str, pos, c)
	case fieldOffset:
		return scanOffset(str, pos, c)
	default:
		return 0, false
	}
}

func (f *field) scanLit(str string, pos int) (int, bool) {
	end := pos + len(f.lit)
	if end <= len(str) && strings.EqualFold(str[pos:end], f.lit) {
		return end, true
	}
	if f.optional {
		return pos, true
	}
	return 0, false
}

func (f *field) scanNum(str string, pos int, c *capture) (int, bool) {
	span := digitSpan(str, pos)
	if span < f.minWidth {
		return 0, false
	}
	width := span
	if width > f.maxWidth {
		width = f.maxWidth
	}
	value := n2i(str, pos, width)
	pos += width

	switch f.target {
	case targetYear:
		c.year = value
		c.yearWidth = width
	case targetMonth:
		c.month = value
	case targetDay:
		c.day = value
	case targetHour:
		c.hour = value
		c.hourIsSet = true
	case targetMinute:
		c.minute = value
		c.minuteIsSet = true
	case targetSecond:
		c.second = value
		c.secondIsSet = true
	}

	if f.ordinal && pos+2 <= len(str) && isOrdinalSuffix(str[pos:pos+2]) {
		pos += 2
	}
	return pos, true
}

func isOrdinalSuffix(s string) bool {
	return strings.EqualFold(s, "st") || strings.EqualFold(s, "nd") ||
		strings.EqualFold(s, "rd") || strings.EqualFold(s, "th")
}

func scanMonthName(str string, pos int, c *capture) (int, bool) {
	start := pos
	for pos < len(str) && isAlpha(str[pos]) {
		pos++
	}
	month, ok := monthNum(str[start:pos])
	if !ok {
		return 0, false
	}
	c.month = month
	if pos < len(str) && str[pos] == '.' {
		pos++
	}
	return pos, true
}

var nanosecondMult = [9]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

func scanFraction(str string, pos int, c *capture) (int, bool) {
	if pos >= len(str) || (str[pos] != '.' && str[pos] != ',') {
		return 0, false
	}
	pos++
	span := digitSpan(str, pos)
	if span == 0 {
		return 0, false
	}
	significant := span
	if significant > 9 {
		significant = 9
	}
	c.nanosecond = n2i(str, pos, significant) * nanosecondMult[9-significant]
	c.nanosecondIsSet = true
	return pos + span, true
}

// scanOffset accepts Z, ±h, ±hh, ±hhmm and ±hh:mm. The ±24h range check
// happens in buildMoment; token shape alone is decided here.
func scanOffset(str string, pos int, c *capture) (int, bool) {
	if pos >= len(str) {
		return 0, false
	}
	if str[pos] == 'Z' || str[pos] == 'z' {
		c.offset = 0
		c.offsetIsSet = true
		return pos + 1, true
	}
	if !isSign(str[pos]) {
		return 0, false
	}
	negative := str[pos] == '-'
	pos++

	span := digitSpan(str, pos)
	var hour, minute int
	switch {
	case span >= 4:
		hour = n2i(str, pos, 2)
		minute = n2i(str, pos+2, 2)
		pos += 4
	case span == 1 || span == 2:
		hour = n2i(str, pos, span)
		pos += span
		if pos < len(str) && str[pos] == ':' && digitSpan(str, pos+1) >= 2 {
			minute = n2i(str, pos+1, 2)
			pos += 3
		}
	default:
		return 0, false
	}
	if minute > 59 {
		return 0, false
	}

	offset := hour*60 + minute
	if negative {
		offset = -offset
	}
	c.offset = offset
	c.offsetIsSet = true
	return pos, true
}
