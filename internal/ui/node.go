// Package ui builds the server-rendered component tree of the front-end.
//
// Components never look the theme up from ambient state: whatever needs it
// receives a *theme.Theme when it is constructed.
package ui

import (
	"html/template"
	"io"
	"regexp"
	"strings"
)

// Node is anything that can be rendered into the HTML body.
type Node interface {
	Render(w io.Writer) error
}

// Text is an escaped text node.
type Text string

// Render writes the escaped text.
func (t Text) Render(w io.Writer) error {
	_, err := io.WriteString(w, template.HTMLEscapeString(string(t)))
	return err
}

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is an HTML element with attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// El creates an element.
func El(tag string, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

var nameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Render writes the element and its subtree. Tag and attribute names that
// are not plain identifiers are rejected rather than escaped.
func (e *Element) Render(w io.Writer) error {
	if !nameRegex.MatchString(e.Tag) {
		return &RenderError{Reason: "invalid tag name", Name: e.Tag}
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		if !nameRegex.MatchString(a.Name) {
			return &RenderError{Reason: "invalid attribute name", Name: a.Name}
		}
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(a.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := child.Render(w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// RenderError reports a node that cannot be rendered safely.
type RenderError struct {
	Reason string
	Name   string
}

func (e *RenderError) Error() string {
	return "ui: " + e.Reason + ": " + e.Name
}

// RenderString renders n into a string.
func RenderString(n Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range children(n) {
		Walk(child, fn)
	}
}

func children(n Node) []Node {
	switch v := n.(type) {
	case *Element:
		return v.Children
	case *Provider:
		return v.children
	default:
		return nil
	}
}

// TextContent returns the text nodes of the tree in document order.
// Stylesheets injected by a Provider are not text nodes.
func TextContent(n Node) []string {
	var out []string
	Walk(n, func(node Node) bool {
		if t, ok := node.(Text); ok {
			out = append(out, string(t))
		}
		return true
	})
	return out
}
