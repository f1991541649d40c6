package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func Text(node *html.Node) string {
	var buffer bytes.Buffer
	textRecursive(node, &buffer)
	return buffer.String()
}

func textRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		textRecursive(child, buffer)
	}
}

// StrippedStrings returns every text fragment under the selection in
// document order, whitespace-trimmed, with empty fragments dropped.
func StrippedStrings(sel *goquery.Selection) []string {
	var out []string
	for _, node := range sel.Nodes {
		strippedRecursive(node, &out)
	}
	return out
}

func strippedRecursive(node *html.Node, out *[]string) {
	if node.Type == html.TextNode {
		if s := strings.TrimSpace(node.Data); s != "" {
			*out = append(*out, s)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		strippedRecursive(child, out)
	}
}
