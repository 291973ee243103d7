package content

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// analysis is what the page index needs from a Markdown body.
type analysis struct {
	Heading string
	Links   []string
}

// analyze parses body with goldmark and returns the first level-1 heading
// and every inline/reference link destination in document order.
func analyze(body []byte) analysis {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var out analysis
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if node.Level == 1 && out.Heading == "" {
				out.Heading = plainText(node, body)
			}
		case *gmast.Link:
			out.Links = append(out.Links, string(node.Destination))
		}
		return gmast.WalkContinue, nil
	})
	return out
}

func plainText(n gmast.Node, src []byte) string {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			buf = append(buf, t.Segment.Value(src)...)
			if t.SoftLineBreak() {
				buf = append(buf, ' ')
			}
		case *gmast.String:
			buf = append(buf, t.Value...)
		default:
			buf = append(buf, plainText(c, src)...)
		}
	}
	return string(buf)
}
