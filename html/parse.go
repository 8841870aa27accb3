// Package html renders HTML fragments into length-bounded markdown text.
//
// Fragments are parsed with golang.org/x/net/html into the acedocs node
// tree and then walked under a fixed character budget.
package html

import (
	"strings"

	"github.com/Bluscream/acedocs"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML fragment in body context. The returned element has
// an empty tag and holds the fragment's top-level nodes as children.
// Comments and doctypes are dropped.
func Parse(fragment string) (*acedocs.Element, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}

	root := &acedocs.Element{}
	for _, n := range nodes {
		if child := convert(n); child != nil {
			root.Children = append(root.Children, child)
		}
	}
	return root, nil
}

func convert(n *html.Node) acedocs.Node {
	switch n.Type {
	case html.TextNode:
		return &acedocs.Text{Value: n.Data}
	case html.ElementNode:
		el := &acedocs.Element{Tag: n.Data}
		if len(n.Attr) > 0 {
			el.Attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				el.Attrs[a.Key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		return nil
	}
}
