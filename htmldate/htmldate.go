// Package htmldate digs a publication date out of an HTML page. It checks
// time elements, then the usual meta tags, then falls back to scanning
// visible text, handing every candidate string to diligentdate.Parse.
package htmldate

import (
	"diligentdate"
	"diligentdate/oops"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Logger receives notes about candidates that were seen but rejected.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type Source string

const (
	SourceTime Source = "time"
	SourceMeta Source = "meta"
	SourceText Source = "text"
)

// Result is a found date plus where in the page it came from.
type Result struct {
	Moment diligentdate.Moment
	Source Source
	Raw    string
}

var timeXPath *xpath.Expr
var metaXPath *xpath.Expr

func init() {
	timeXPath = xpath.MustCompile("//time[@datetime]")
	metaXPath = xpath.MustCompile("//meta[@content]")
}

var digitRegex *regexp.Regexp
var slashedDigitsRegex *regexp.Regexp
var embeddedISORegex *regexp.Regexp

func init() {
	digitRegex = regexp.MustCompile(`\d`)
	slashedDigitsRegex = regexp.MustCompile(`\d/\d`)
	embeddedISORegex = regexp.MustCompile(`(?:\D|^)(\d\d\d\d)-(\d\d)-(\d\d)(?:\D|$)`)
}

// metaCandidates are checked in order, publication dates ahead of
// modification dates.
var metaCandidates = []struct {
	Attr   string
	Values []string
}{
	{"property", []string{"article:published_time", "og:published_time", "article:modified_time"}},
	{"itemprop", []string{"datePublished", "dateModified"}},
	{"name", []string{"date", "pubdate", "publishdate", "dc.date", "dc.date.issued", "parsely-pub-date", "sailthru.date"}},
}

// Find returns the first date the page gives up, or nil if there is none.
// The error covers only failures to read the document itself.
func Find(content string, logger Logger) (*Result, error) {
	document, err := htmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return nil, oops.Wrap(err)
	}

	if result := findTimeElement(document, logger); result != nil {
		return result, nil
	}
	if result := findMetaTag(document, logger); result != nil {
		return result, nil
	}
	if result := findTextDate(document, logger); result != nil {
		return result, nil
	}

	logger.Info("No date found in page")
	return nil, nil
}

func findTimeElement(document *html.Node, logger Logger) *Result {
	for _, node := range htmlquery.QuerySelectorAll(document, timeXPath) {
		raw := strings.TrimSpace(htmlquery.SelectAttr(node, "datetime"))
		if raw == "" {
			continue
		}
		moment, ok := diligentdate.Parse(raw)
		if !ok {
			logger.Warn("Unparseable time datetime: %s", raw)
			continue
		}
		logger.Info("Date from time element: %s", moment)
		return &Result{Moment: moment, Source: SourceTime, Raw: raw}
	}
	return nil
}

func findMetaTag(document *html.Node, logger Logger) *Result {
	metaNodes := htmlquery.QuerySelectorAll(document, metaXPath)
	for _, candidate := range metaCandidates {
		for _, value := range candidate.Values {
			for _, node := range metaNodes {
				if !strings.EqualFold(htmlquery.SelectAttr(node, candidate.Attr), value) {
					continue
				}
				raw := strings.TrimSpace(htmlquery.SelectAttr(node, "content"))
				if raw == "" {
					continue
				}
				moment, ok := diligentdate.Parse(raw)
				if !ok {
					logger.Warn("Unparseable meta %s: %s", value, raw)
					continue
				}
				logger.Info("Date from meta %s: %s", value, moment)
				return &Result{Moment: moment, Source: SourceMeta, Raw: raw}
			}
		}
	}
	return nil
}

func findTextDate(document *html.Node, logger Logger) *Result {
	var result *Result
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if result != nil {
			return
		}
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		if node.Type == html.TextNode {
			if found := tryTextNode(node.Data); found != nil {
				result = found
				logger.Info("Date from page text: %s", found.Moment)
				return
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(document)
	return result
}

func tryTextNode(text string) *Result {
	text = strings.TrimSpace(text)
	if text == "" || !digitRegex.MatchString(text) {
		return nil
	}
	// Free text can't tell MM/DD from DD/MM, skip slashed dates entirely
	if slashedDigitsRegex.MatchString(text) {
		return nil
	}

	if match := embeddedISORegex.FindStringSubmatch(text); match != nil {
		candidate := match[1] + "-" + match[2] + "-" + match[3]
		if moment, ok := diligentdate.Parse(candidate); ok && plausibleYear(moment.Year) {
			return &Result{Moment: moment, Source: SourceText, Raw: candidate}
		}
	}

	if moment, ok := diligentdate.Parse(text); ok && plausibleYear(moment.Year) {
		return &Result{Moment: moment, Source: SourceText, Raw: text}
	}
	return nil
}

func plausibleYear(year int) bool {
	return year >= 1900 && year < 2200
}
