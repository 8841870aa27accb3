package acedocs

import "strings"

// Node is a node of a parsed markup tree. The only implementations are
// *Element and *Text.
type Node interface {
	node()
}

// Element is a markup element with its attributes and children.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
}

// Text is a run of literal text.
type Text struct {
	Value string
}

func (*Element) node() {}
func (*Text) node()    {}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// HasClass reports whether the element's class list contains class.
func (e *Element) HasClass(class string) bool {
	for _, c := range strings.Fields(e.Attrs["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates the element's direct text children.
// Text nested in child elements is not included.
func (e *Element) TextContent() string {
	var b strings.Builder
	for _, child := range e.Children {
		if t, ok := child.(*Text); ok {
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

// ReplaceTag replaces every descendant element with the given tag by a text
// node holding value.
func (e *Element) ReplaceTag(tag, value string) {
	for i, child := range e.Children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		if el.Tag == tag {
			e.Children[i] = &Text{Value: value}
			continue
		}
		el.ReplaceTag(tag, value)
	}
}
