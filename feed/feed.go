// Package feed reads RSS, RDF and Atom documents just deeply enough to
// pull out entry titles, links and timestamps. Timestamps go through
// diligentdate.Parse, so the many date shapes feeds use in the wild all
// land in the same Moment representation.
package feed

import (
	"diligentdate"
	"diligentdate/oops"
	"html"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"golang.org/x/text/encoding/charmap"
)

type Kind string

const (
	KindUnknown Kind = ""
	KindRSS     Kind = "rss"
	KindRDF     Kind = "rdf"
	KindAtom    Kind = "atom"
)

// Document is a parsed feed. RawDate, Moment and HasMoment describe the
// channel-level timestamp (lastBuildDate, updated) when the feed carries one.
type Document struct {
	Kind      Kind
	Title     string
	RawDate   string
	Moment    diligentdate.Moment
	HasMoment bool
	Entries   []Entry
}

// Entry is one feed item. RawDate keeps the timestamp text as it appeared;
// HasMoment reports whether that text parsed into Moment.
type Entry struct {
	Title     string
	URL       string
	RawDate   string
	Moment    diligentdate.Moment
	HasMoment bool
}

// Parse reads a feed document. Malformed entry dates are reported to the
// logger and leave HasMoment false; only an unreadable or unrecognized
// document is an error.
func Parse(content string, logger Logger) (*Document, error) {
	xml, err := parseXML(content)
	if err != nil {
		return nil, oops.Wrap(err)
	}

	switch detectKind(xml) {
	case KindRSS:
		return parseRSS(xml, logger), nil
	case KindRDF:
		return parseRDF(xml, logger), nil
	case KindAtom:
		return parseAtom(xml, logger), nil
	default:
		return nil, oops.New("not an RSS, RDF or Atom document")
	}
}

func parseXML(content string) (*xmlquery.Node, error) {
	reader := strings.NewReader(content)
	return xmlquery.ParseWithOptions(reader, xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{ //nolint:exhaustruct
			Strict: false,
			CharsetReader: func(charset string, input io.Reader) (io.Reader, error) {
				switch strings.ToLower(charset) {
				case "iso-8859-1":
					return charmap.ISO8859_1.NewDecoder().Reader(input), nil
				case "windows-1252":
					return charmap.Windows1252.NewDecoder().Reader(input), nil
				case "us-ascii":
					return input, nil
				default:
					return nil, oops.Newf("unknown XML charset: %s", charset)
				}
			},
		},
	})
}

func detectKind(xml *xmlquery.Node) Kind {
	if xmlquery.FindOne(xml, "/rss/channel") != nil {
		return KindRSS
	}

	rdf := xmlquery.FindOne(xml, "/rdf:RDF[@xmlns='http://purl.org/rss/1.0/'][@xmlns:rdf]")
	if rdf != nil && xmlquery.FindOne(rdf, "/channel") != nil {
		return KindRDF
	}

	feedNode := xmlquery.FindOne(xml, "/feed")
	if feedNode != nil && feedNode.NamespaceURI == "http://www.w3.org/2005/Atom" {
		return KindAtom
	}

	return KindUnknown
}

func parseRSS(xml *xmlquery.Node, logger Logger) *Document {
	logger.Info("RSS feed")

	channel := xmlquery.FindOne(xml, "/rss/channel")
	doc := &Document{Kind: KindRSS, Title: decodeTitle(childText(channel, "title"))}
	doc.RawDate, doc.Moment, doc.HasMoment = findMoment(channel, logger, "lastBuildDate", "pubDate", "dc:date")

	for _, itemNode := range xmlquery.Find(channel, "item") {
		entry := Entry{
			Title: decodeTitle(childText(itemNode, "title")),
			URL:   childText(itemNode, "link"),
		}
		if entry.URL == "" {
			entry.URL = childText(itemNode, "guid[@isPermaLink='true']")
		}
		entry.RawDate, entry.Moment, entry.HasMoment = findMoment(itemNode, logger, "pubDate", "dc:date")
		doc.Entries = append(doc.Entries, entry)
	}
	return doc
}

func parseRDF(xml *xmlquery.Node, logger Logger) *Document {
	logger.Info("RDF feed")

	channel := xmlquery.FindOne(xml, "/rdf:RDF/channel")
	doc := &Document{Kind: KindRDF, Title: decodeTitle(childText(channel, "title"))}
	doc.RawDate, doc.Moment, doc.HasMoment = findMoment(channel, logger, "dc:date")

	// RSS 1.0 puts items next to the channel, but some feeds nest them.
	itemNodes := xmlquery.Find(xml, "/rdf:RDF/channel/item")
	if len(itemNodes) == 0 {
		itemNodes = xmlquery.Find(xml, "/rdf:RDF/item")
	}

	for _, itemNode := range itemNodes {
		entry := Entry{
			Title: decodeTitle(childText(itemNode, "title")),
			URL:   childText(itemNode, "link"),
		}
		entry.RawDate, entry.Moment, entry.HasMoment = findMoment(itemNode, logger, "dc:date")
		doc.Entries = append(doc.Entries, entry)
	}
	return doc
}

func parseAtom(xml *xmlquery.Node, logger Logger) *Document {
	logger.Info("Atom feed")

	atomFeed := xmlquery.FindOne(xml, "/feed")
	doc := &Document{Kind: KindAtom, Title: decodeTitle(childText(atomFeed, "title"))}
	doc.RawDate, doc.Moment, doc.HasMoment = findMoment(atomFeed, logger, "updated")

	for _, entryNode := range xmlquery.Find(atomFeed, "entry") {
		entry := Entry{
			Title: decodeTitle(childText(entryNode, "title")),
			URL:   atomURL(entryNode),
		}
		entry.RawDate, entry.Moment, entry.HasMoment = findMoment(entryNode, logger, "published", "updated")
		doc.Entries = append(doc.Entries, entry)
	}
	return doc
}

// findMoment walks the date selectors in preference order and returns the
// first text that parses. Text that refuses to parse is logged; the raw
// string keeps the first non-empty date text whether or not it parsed.
func findMoment(node *xmlquery.Node, logger Logger, selectors ...string) (string, diligentdate.Moment, bool) {
	raw := ""
	for _, selector := range selectors {
		dateNode := xmlquery.FindOne(node, selector)
		if dateNode == nil {
			continue
		}
		text := strings.TrimSpace(dateNode.InnerText())
		if text == "" {
			continue
		}
		if raw == "" {
			raw = text
		}

		moment, ok := diligentdate.Parse(text)
		if !ok {
			logger.Warn("Unparseable %s: %s", selector, text)
			continue
		}
		return text, moment, true
	}
	return raw, diligentdate.Moment{}, false
}

func atomURL(node *xmlquery.Node) string {
	linkNodes := xmlquery.Find(node, "link")
	var candidates []*xmlquery.Node
	for _, linkNode := range linkNodes {
		if linkNode.SelectAttr("rel") == "alternate" {
			candidates = append(candidates, linkNode)
		}
	}
	if len(candidates) == 0 {
		for _, linkNode := range linkNodes {
			if linkNode.SelectAttr("rel") == "" {
				candidates = append(candidates, linkNode)
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0].SelectAttr("href")
}

func childText(node *xmlquery.Node, selector string) string {
	if node == nil {
		return ""
	}
	child := xmlquery.FindOne(node, selector)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.InnerText())
}

func decodeTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(title))
}

// SortedByMomentDesc returns the entries newest first, leaving the document
// untouched. Entries without a parsed date keep their original order at the
// end. For ordering purposes a missing clock reads as midnight and a
// missing offset as UTC; the entries themselves are not modified.
func (d *Document) SortedByMomentDesc() []Entry {
	sorted := make([]Entry, len(d.Entries))
	copy(sorted, d.Entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].HasMoment != sorted[j].HasMoment {
			return sorted[i].HasMoment
		}
		if !sorted[i].HasMoment {
			return false
		}
		return momentSortKey(sorted[i].Moment).After(momentSortKey(sorted[j].Moment))
	})
	return sorted
}

func momentSortKey(m diligentdate.Moment) time.Time {
	loc := time.UTC
	if m.OffsetIsSet && m.Offset != 0 {
		loc = time.FixedZone("", m.Offset*60)
	}
	return time.Date(m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second, m.Nanosecond, loc)
}
