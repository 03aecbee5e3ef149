package feed

import (
	"diligentdate"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Example &amp; Blog</title>
<link>https://blog.example.com</link>
<lastBuildDate>Wed, 18 Jun 2025 11:00:00 +0200</lastBuildDate>
<item>
<title>Second post</title>
<link>https://blog.example.com/2</link>
<pubDate>Wed, 18 Jun 2025 10:30:00 +0200</pubDate>
</item>
<item>
<title>First post</title>
<link>https://blog.example.com/1</link>
<pubDate>Tue, 17 Jun 2025 08:00:00 GMT</pubDate>
</item>
<item>
<title>Undated post</title>
<link>https://blog.example.com/0</link>
<pubDate>someday soon</pubDate>
</item>
<item>
<title>Guid only</title>
<guid isPermaLink="true">https://blog.example.com/guid</guid>
<pubDate>Mon, 16 Jun 2025 12:00:00 +0000</pubDate>
</item>
</channel>
</rss>`

func TestParseRSS(t *testing.T) {
	logger := NewDummyLogger()
	doc, err := Parse(rssFixture, logger)
	require.NoError(t, err)
	require.Equal(t, KindRSS, doc.Kind)
	require.Equal(t, "Example & Blog", doc.Title)
	require.True(t, doc.HasMoment)
	require.Equal(t, "2025-06-18T11:00:00+02:00", doc.Moment.String())
	require.Len(t, doc.Entries, 4)

	require.Equal(t, "Second post", doc.Entries[0].Title)
	require.Equal(t, "https://blog.example.com/2", doc.Entries[0].URL)
	require.True(t, doc.Entries[0].HasMoment)
	require.Equal(t, "2025-06-18T10:30:00+02:00", doc.Entries[0].Moment.String())

	// A zone name strips away without becoming an offset, while a numeric
	// zero offset is a real offset.
	require.True(t, doc.Entries[1].HasMoment)
	require.Equal(t, "2025-06-17T08:00:00", doc.Entries[1].Moment.String())
	require.False(t, doc.Entries[1].Moment.OffsetIsSet)
	require.True(t, doc.Entries[3].Moment.OffsetIsSet)
	require.Equal(t, "2025-06-16T12:00:00Z", doc.Entries[3].Moment.String())

	require.False(t, doc.Entries[2].HasMoment)
	require.Equal(t, "someday soon", doc.Entries[2].RawDate)
	require.Contains(t, strings.Join(logger.Lines(), "\n"), "someday soon")

	require.Equal(t, "https://blog.example.com/guid", doc.Entries[3].URL)
}

const rdfFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns="http://purl.org/rss/1.0/"
         xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
<title>RDF Blog</title>
<link>https://rdf.example.com</link>
<dc:date>2017-05-20T08:00:00+00:00</dc:date>
</channel>
<item>
<title>Entry</title>
<link>https://rdf.example.com/1</link>
<dc:date>2017-05-16T09:54:18+00:00</dc:date>
</item>
</rdf:RDF>`

func TestParseRDF(t *testing.T) {
	doc, err := Parse(rdfFixture, NewDummyLogger())
	require.NoError(t, err)
	require.Equal(t, KindRDF, doc.Kind)
	require.Equal(t, "RDF Blog", doc.Title)
	require.True(t, doc.HasMoment)
	require.Equal(t, "2017-05-20T08:00:00Z", doc.Moment.String())
	require.Len(t, doc.Entries, 1)
	require.Equal(t, "Entry", doc.Entries[0].Title)
	require.Equal(t, "https://rdf.example.com/1", doc.Entries[0].URL)
	require.True(t, doc.Entries[0].HasMoment)
	require.Equal(t, "2017-05-16T09:54:18Z", doc.Entries[0].Moment.String())
}

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>Atom Blog</title>
<link rel="alternate" href="https://atom.example.com"/>
<updated>2025-06-19T07:00:00Z</updated>
<entry>
<title>Hello</title>
<link rel="alternate" href="https://atom.example.com/hello"/>
<published>2025-06-18T10:30:00Z</published>
</entry>
<entry>
<title>Updated only</title>
<link href="https://atom.example.com/upd"/>
<updated>2024-01-08T13:00:00Z</updated>
</entry>
</feed>`

func TestParseAtom(t *testing.T) {
	doc, err := Parse(atomFixture, NewDummyLogger())
	require.NoError(t, err)
	require.Equal(t, KindAtom, doc.Kind)
	require.Equal(t, "Atom Blog", doc.Title)
	require.True(t, doc.HasMoment)
	require.Equal(t, "2025-06-19T07:00:00Z", doc.Moment.String())
	require.Len(t, doc.Entries, 2)

	require.Equal(t, "https://atom.example.com/hello", doc.Entries[0].URL)
	require.Equal(t, "2025-06-18T10:30:00Z", doc.Entries[0].Moment.String())

	// No published element, so updated is used; the bare link counts as
	// the alternate.
	require.Equal(t, "https://atom.example.com/upd", doc.Entries[1].URL)
	require.Equal(t, "2024-01-08T13:00:00Z", doc.Entries[1].Moment.String())
}

const latinFixture = "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
	"<rss version=\"2.0\"><channel><title>Caf\xe9 feed</title>" +
	"<item><title>Entr\xe9e</title><link>https://cafe.example.com/1</link>" +
	"<pubDate>18 Jun 2025</pubDate></item></channel></rss>"

func TestParseLatin1(t *testing.T) {
	doc, err := Parse(latinFixture, NewDummyLogger())
	require.NoError(t, err)
	require.Equal(t, "Café feed", doc.Title)
	require.Len(t, doc.Entries, 1)
	require.Equal(t, "Entrée", doc.Entries[0].Title)
	require.Equal(t, "2025-06-18", doc.Entries[0].Moment.String())
}

func TestParseNotAFeed(t *testing.T) {
	_, err := Parse("<html><body>hi</body></html>", NewDummyLogger())
	require.Error(t, err)

	_, err = Parse("", NewDummyLogger())
	require.Error(t, err)
}

func TestSortedByMomentDesc(t *testing.T) {
	mustMoment := func(str string) diligentdate.Moment {
		moment, ok := diligentdate.Parse(str)
		require.True(t, ok, str)
		return moment
	}

	doc := &Document{Kind: KindRSS, Entries: []Entry{
		{Title: "middle", Moment: mustMoment("2025-06-17"), HasMoment: true},
		{Title: "undated a"},
		{Title: "newest", Moment: mustMoment("2025-06-18T08:00:00Z"), HasMoment: true},
		{Title: "undated b"},
		{Title: "oldest", Moment: mustMoment("16 Jun 2025"), HasMoment: true},
	}}

	sorted := doc.SortedByMomentDesc()
	titles := make([]string, 0, len(sorted))
	for _, entry := range sorted {
		titles = append(titles, entry.Title)
	}
	require.Equal(t, []string{"newest", "middle", "oldest", "undated a", "undated b"}, titles)

	// The document keeps its original order.
	require.Equal(t, "middle", doc.Entries[0].Title)
}
