package domain

import "strings"

// NodeKind identifies what a display node renders as.
type NodeKind string

const (
	NodeSpan NodeKind = "span"
	NodeDiv  NodeKind = "div"
	NodeText NodeKind = "text"
	NodeLink NodeKind = "link"
	NodeIcon NodeKind = "icon"
)

// IconRef points at an icon by name, with display-size hints.
// A zero Width or Height means "auto".
type IconRef struct {
	Name   string
	Width  float32
	Height float32
	Margin string
}

// Node is an immutable display tree.
//
// Spans lay their children out inline, divs stack them. Text, link and icon
// nodes are leaves. Class carries style hook names; renderers may ignore them.
type Node struct {
	Kind     NodeKind
	Class    string
	Text     string
	URL      string
	Icon     IconRef
	Children []Node
}

// Span returns an inline container node.
func Span(class string, children ...Node) Node {
	return Node{Kind: NodeSpan, Class: class, Children: children}
}

// Div returns a block container node.
func Div(class string, children ...Node) Node {
	return Node{Kind: NodeDiv, Class: class, Children: children}
}

// Text returns a text leaf.
func Text(s string) Node {
	return Node{Kind: NodeText, Text: s}
}

// Anchor returns a link leaf that opens url externally.
func Anchor(class, label, url string) Node {
	return Node{Kind: NodeLink, Class: class, Text: label, URL: url}
}

// Icon returns an icon leaf.
func Icon(ref IconRef) Node {
	return Node{Kind: NodeIcon, Icon: ref}
}

// HasClass reports whether class is one of the node's space-separated classes.
func (n Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and all its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindByClass returns the first node (depth-first) that carries class.
func (n Node) FindByClass(class string) (Node, bool) {
	var found Node
	ok := false
	n.Walk(func(node Node) bool {
		if ok {
			return false
		}
		if node.HasClass(class) {
			found, ok = node, true
			return false
		}
		return true
	})
	return found, ok
}

// Links collects every link leaf in document order.
func (n Node) Links() []Link {
	var links []Link
	n.Walk(func(node Node) bool {
		if node.Kind == NodeLink {
			links = append(links, Link{Label: node.Text, URL: node.URL})
		}
		return true
	})
	return links
}

// Icons collects every icon reference in document order.
func (n Node) Icons() []IconRef {
	var icons []IconRef
	n.Walk(func(node Node) bool {
		if node.Kind == NodeIcon {
			icons = append(icons, node.Icon)
		}
		return true
	})
	return icons
}

// TextContent concatenates the text of all text and link leaves, separated by single spaces.
func (n Node) TextContent() string {
	var parts []string
	n.Walk(func(node Node) bool {
		if (node.Kind == NodeText || node.Kind == NodeLink) && node.Text != "" {
			parts = append(parts, node.Text)
		}
		return true
	})
	return strings.Join(parts, " ")
}
