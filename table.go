package diligentdate

import "strings"

var monthsArr = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthNum resolves a month name or a leading abbreviation of one ("Sept",
// "Jan"). Tokens shorter than three letters are rejected as too ambiguous.
func monthNum(token string) (int, bool) {
	if len(token) < 3 {
		return 0, false
	}
	token = strings.ToLower(token)
	for i := range monthsArr {
		if strings.HasPrefix(monthsArr[i], token) {
			return i + 1, true
		}
	}
	return 0, false
}

func lit(s string) field {
	return field{kind: fieldLit, lit: s}
}

func optLit(s string) field {
	return field{kind: fieldLit, lit: s, optional: true}
}

func num(minWidth int, maxWidth int, target fieldTarget) field {
	return field{kind: fieldNum, minWidth: minWidth, maxWidth: maxWidth, target: target}
}

func ordinalNum(minWidth int, maxWidth int, target fieldTarget) field {
	return field{kind: fieldNum, minWidth: minWidth, maxWidth: maxWidth, target: target, ordinal: true}
}

func monthName() field {
	return field{kind: fieldMonthName}
}

func fraction() field {
	return field{kind: fieldFraction}
}

func offset() field {
	return field{kind: fieldOffset}
}

func seg(fields ...field) segment {
	return segment{fields: fields}
}

func opt(fields ...field) segment {
	return segment{optional: true, fields: fields}
}

// patternTable is tried in order and the first pattern that matches
// structurally and survives validation wins. Mail-header dates come first,
// then ISO 8601 and its relatives, then slashed numeric dates with the US
// convention ahead of the European one, then the named-month and dotted
// forms. Two-digit-year variants sit after every four-digit form so a
// four-digit year is never split.
var patternTable = []pattern{
	{
		// 18 Jun 2025 10:30:00 +0200, mail headers truncate down to a bare hour
		name:    "rfc2822",
		classes: classFlagHaveAlpha | classFlagHaveDigit,
		segments: []segment{
			seg(ordinalNum(1, 2, targetDay), lit(" "), monthName(), lit(" "), num(4, 4, targetYear)),
			opt(lit(" "), num(1, 2, targetHour)),
			opt(lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(lit(" "), offset()),
		},
	},
	{
		// 18 Jun 99 10:30:00 +0200
		name:    "rfc2822-yy",
		classes: classFlagHaveAlpha | classFlagHaveDigit,
		segments: []segment{
			seg(ordinalNum(1, 2, targetDay), lit(" "), monthName(), lit(" "), num(2, 2, targetYear)),
			opt(lit(" "), num(1, 2, targetHour)),
			opt(lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(lit(" "), offset()),
		},
	},
	{
		// 2025-06-18T10:30:00.123+02:00
		name:    "rfc3339",
		classes: classFlagHaveDigit | classFlagHaveDash,
		segments: []segment{
			seg(num(4, 4, targetYear), lit("-"), num(2, 2, targetMonth), lit("-"), num(2, 2, targetDay)),
			opt(lit("T"), num(1, 2, targetHour)),
			opt(lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(fraction()),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 2025-06-18 10:30:00 +0500
		name:    "iso-space",
		classes: classFlagHaveDigit | classFlagHaveDash,
		segments: []segment{
			seg(num(4, 4, targetYear), lit("-"), num(2, 2, targetMonth), lit("-"), num(2, 2, targetDay)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(fraction()),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 06/18/2025 10:30
		name:    "us-slash",
		classes: classFlagHaveDigit | classFlagHaveSlash,
		segments: []segment{
			seg(num(1, 2, targetMonth), lit("/"), num(1, 2, targetDay), lit("/"), num(4, 4, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 18/06/2025 10:30
		name:    "eu-slash",
		classes: classFlagHaveDigit | classFlagHaveSlash,
		segments: []segment{
			seg(num(1, 2, targetDay), lit("/"), num(1, 2, targetMonth), lit("/"), num(4, 4, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// June 18th, 2025 10:30:00
		name:    "month-day-year",
		classes: classFlagHaveAlpha | classFlagHaveDigit,
		segments: []segment{
			seg(monthName(), lit(" "), ordinalNum(1, 2, targetDay), optLit(","), lit(" "), num(4, 4, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// Aug 28 02:55:50 1999, Dec 24 13:19:25 +0200 2017
		name:    "ctime",
		classes: classFlagHaveAlpha | classFlagHaveDigit | classFlagHaveColon,
		segments: []segment{
			seg(monthName(), lit(" "), ordinalNum(1, 2, targetDay), lit(" "),
				num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(lit(" "), offset()),
			seg(lit(" "), num(4, 4, targetYear)),
		},
	},
	{
		// 2025-6-8 10:30
		name:    "ymd-dash",
		classes: classFlagHaveDigit | classFlagHaveDash,
		segments: []segment{
			seg(num(4, 4, targetYear), lit("-"), num(1, 2, targetMonth), lit("-"), num(1, 2, targetDay)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(fraction()),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 2025/06/18 10:30
		name:    "ymd-slash",
		classes: classFlagHaveDigit | classFlagHaveSlash,
		segments: []segment{
			seg(num(4, 4, targetYear), lit("/"), num(1, 2, targetMonth), lit("/"), num(1, 2, targetDay)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 2025.06.18 10:30
		name:    "ymd-dot",
		classes: classFlagHaveDigit | classFlagHaveDot,
		segments: []segment{
			seg(num(4, 4, targetYear), lit("."), num(1, 2, targetMonth), lit("."), num(1, 2, targetDay)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 18-Jun-2025 10:30
		name:    "dmy-dashed",
		classes: classFlagHaveAlpha | classFlagHaveDigit | classFlagHaveDash,
		segments: []segment{
			seg(ordinalNum(1, 2, targetDay), lit("-"), monthName(), lit("-"), num(4, 4, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 18-Jun-99
		name:    "dmy-dashed-yy",
		classes: classFlagHaveAlpha | classFlagHaveDigit | classFlagHaveDash,
		segments: []segment{
			seg(ordinalNum(1, 2, targetDay), lit("-"), monthName(), lit("-"), num(2, 2, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 18.06.2025 10:30
		name:    "eu-dot",
		classes: classFlagHaveDigit | classFlagHaveDot,
		segments: []segment{
			seg(num(1, 2, targetDay), lit("."), num(1, 2, targetMonth), lit("."), num(4, 4, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 06/18/25 10:30
		name:    "us-slash-yy",
		classes: classFlagHaveDigit | classFlagHaveSlash,
		segments: []segment{
			seg(num(1, 2, targetMonth), lit("/"), num(1, 2, targetDay), lit("/"), num(2, 2, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
	{
		// 18/06/25 10:30
		name:    "eu-slash-yy",
		classes: classFlagHaveDigit | classFlagHaveSlash,
		segments: []segment{
			seg(num(1, 2, targetDay), lit("/"), num(1, 2, targetMonth), lit("/"), num(2, 2, targetYear)),
			opt(lit(" "), num(1, 2, targetHour), lit(":"), num(2, 2, targetMinute)),
			opt(lit(":"), num(2, 2, targetSecond)),
			opt(optLit(" "), offset()),
		},
	},
}
