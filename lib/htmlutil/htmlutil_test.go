package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, fragment string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func TestText(t *testing.T) {
	doc := parse(t, `<div id="x">hello <b>bold</b> world</div>`)
	sel := doc.Find("div#x")
	require.Len(t, sel.Nodes, 1)
	require.Equal(t, "hello bold world", Text(sel.Nodes[0]))
}

func TestStrippedStrings(t *testing.T) {
	doc := parse(t, `<div id="x">
		first line<br/>
		second <b>line</b><br/>
		<i>   </i>
		third line
	</div>`)

	require.Equal(t,
		[]string{"first line", "second", "line", "third line"},
		StrippedStrings(doc.Find("div#x")))
}

func TestStrippedStringsEmpty(t *testing.T) {
	doc := parse(t, `<div id="x"> <br/> </div>`)
	require.Empty(t, StrippedStrings(doc.Find("div#x")))
}
