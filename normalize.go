package diligentdate

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Weekday names and timezone abbreviations are noise: inputs like
// "Wed, 18 Jun 2025 10:30:00 GMT" carry them, but they never contribute
// fields. Named zones in particular are stripped rather than resolved, so
// only an explicit "Z" or numeric offset ever produces an offset.

const weekdayNames = "sunday|monday|tuesday|wednesday|thursday|friday|saturday|" +
	"sun|mon|tues|tue|weds|wed|thurs|thur|thu|fri|sat"

// RFC 2822 obsolete zones plus abbreviations common in web feeds.
const zoneNames = "akst|akdt|aest|aedt|acst|acdt|awst|nzst|nzdt|cest|eest|west|" +
	"gmt|utc|est|edt|cst|cdt|mst|mdt|pst|pdt|hst|hdt|nst|ndt|ast|adt|" +
	"bst|ist|wet|cet|eet|msk|jst|kst|sgt|hkt|ut"

const backtrackingRegexTimeout = 250 * time.Millisecond

var invisibleRegex *regexp2.Regexp
var weekdayPrefixRegex *regexp2.Regexp
var weekdaySuffixRegex *regexp2.Regexp
var zoneRegex *regexp2.Regexp

func init() {
	invisibleRegex = regexp2.MustCompile("[\\u200B\\u200C\\u200D\\u2060\\uFEFF]+", regexp2.None)
	invisibleRegex.MatchTimeout = backtrackingRegexTimeout

	weekdayPrefixRegex = regexp2.MustCompile(
		"^(?:"+weekdayNames+")\\.?,?(?=\\s)",
		regexp2.IgnoreCase,
	)
	weekdayPrefixRegex.MatchTimeout = backtrackingRegexTimeout

	weekdaySuffixRegex = regexp2.MustCompile(
		"(?<=\\s)\\(?(?:"+weekdayNames+")\\.?\\)?$",
		regexp2.IgnoreCase,
	)
	weekdaySuffixRegex.MatchTimeout = backtrackingRegexTimeout

	zoneRegex = regexp2.MustCompile(
		"(?<=^|\\s)\\(?(?:"+zoneNames+")\\)?\\.?(?=[\\s,+\\-]|$)",
		regexp2.IgnoreCase,
	)
	zoneRegex.MatchTimeout = backtrackingRegexTimeout
}

// normalize trims and collapses whitespace and strips recognized noise
// tokens. It never fails: text with no recognized noise comes back
// unchanged beyond the whitespace cleanup.
func normalize(str string) string {
	str, _ = invisibleRegex.Replace(str, "", -1, -1)
	str = strings.Join(strings.Fields(str), " ")
	str, _ = weekdayPrefixRegex.Replace(str, "", -1, -1)
	str, _ = weekdaySuffixRegex.Replace(str, "", -1, -1)
	str, _ = zoneRegex.Replace(str, " ", -1, -1)
	return strings.Join(strings.Fields(str), " ")
}
