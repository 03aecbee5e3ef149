// Run `golangci-lint cache clean` after modifying this file.

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func timeUsage(m dsl.Matcher) {
	m.Match(`time.Parse($*_)`, `time.ParseInLocation($*_)`).
		Report(`layout-based parsing bypasses the pattern table, use diligentdate.Parse`)
	m.Match(`time.Now()`).
		Where(!m.File().PkgPath.Matches(`diligentdate/cmd`)).
		Report(`date parsing must not depend on the wall clock`)
	m.Match(`time.LoadLocation($_)`).
		Report(`named time zones are never resolved, only numeric offsets`)
}
