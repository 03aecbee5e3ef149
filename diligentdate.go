// Package diligentdate extracts calendar dates from strings of unknown
// format. Parse tries a fixed table of patterns against the cleaned-up
// input and returns the first one that produces a valid date. It is meant
// for feed timestamps and scraped page metadata, where anything from an
// RFC 2822 mail header date down to a bare "18.06.2025" shows up.
package diligentdate

// maxInputLength bounds the raw input. Longer strings are rejected before
// normalization runs.
const maxInputLength = 128

// Parse extracts a date from text. The boolean reports whether any pattern
// produced a valid date; there is no error detail beyond that. Parse is
// pure and safe for concurrent use.
func Parse(text string) (Moment, bool) {
	if len(text) > maxInputLength {
		return Moment{}, false
	}
	str := normalize(text)
	if str == "" {
		return Moment{}, false
	}

	flags := checkClass(str)
	for i := range patternTable {
		p := &patternTable[i]
		if p.classes&flags != p.classes {
			continue
		}
		c, ok := p.match(str)
		if !ok {
			continue
		}
		moment, ok := buildMoment(c)
		if !ok {
			continue
		}
		return moment, true
	}
	return Moment{}, false
}
