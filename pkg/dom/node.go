package dom

import (
	"sort"
	"strconv"
	"strings"
)

// Node is an element in the tree.
type Node struct {
	EventTarget

	Tag string

	attrs    map[string]string
	style    map[string]string
	children []*Node
	parent   *Node
	doc      *Document
}

// NewElement creates a detached element. attrs are name/value pairs.
func NewElement(tag string, attrs ...string) *Node {
	n := &Node{Tag: strings.ToLower(tag)}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.SetAttribute(attrs[i], attrs[i+1])
	}
	return n
}

// Append adds children and returns n, for building trees inline.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// AppendChild attaches child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	child.setDocument(n.doc)
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.parent = nil
			child.setDocument(nil)
			return
		}
	}
}

func (n *Node) setDocument(doc *Document) {
	n.doc = doc
	for _, c := range n.children {
		c.setDocument(doc)
	}
}

// Children returns the child elements.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent element, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Document returns the owning document, or nil when detached.
func (n *Node) Document() *Document {
	return n.doc
}

// SetAttribute sets an attribute value.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[strings.ToLower(name)] = value
}

// Attribute returns an attribute value and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[strings.ToLower(name)]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attrs[strings.ToLower(name)]
	return ok
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, strings.ToLower(name))
}

// AttributeNames returns the attribute names in sorted order.
func (n *Node) AttributeNames() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Style returns an inline style property, or "" when unset.
func (n *Node) Style(prop string) string {
	return n.style[prop]
}

// SetStyle sets an inline style property. An empty value removes it.
func (n *Node) SetStyle(prop, value string) {
	if value == "" {
		delete(n.style, prop)
		return
	}
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[prop] = value
}

// Walk visits n and its descendants in document order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first descendant (or n itself) matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindByAttribute returns the first node whose attribute name equals value.
func (n *Node) FindByAttribute(name, value string) *Node {
	return n.Find(func(c *Node) bool {
		v, ok := c.Attribute(name)
		return ok && v == value
	})
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// DispatchEvent delivers e to n and then to each ancestor until a listener
// stops propagation. Events reaching the root continue to the document.
func (n *Node) DispatchEvent(e *Event) {
	e.Target = n
	for cur := n; cur != nil && !e.stopped; cur = cur.parent {
		e.CurrentTarget = cur
		cur.fire(e)
	}
	if !e.stopped && n.doc != nil {
		e.CurrentTarget = nil
		n.doc.fire(e)
	}
}

// Focusable reports whether the element can receive keyboard focus.
func (n *Node) Focusable() bool {
	if n.HasAttribute("disabled") || n.HasAttribute("hidden") {
		return false
	}
	if v, ok := n.Attribute("tabindex"); ok {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil && i >= 0
	}
	switch n.Tag {
	case "button", "select", "textarea", "iframe", "summary":
		return true
	case "input":
		t, _ := n.Attribute("type")
		return t != "hidden"
	case "a", "area":
		return n.HasAttribute("href")
	}
	if v, ok := n.Attribute("contenteditable"); ok && v != "false" {
		return true
	}
	return false
}

var textInputTypes = map[string]bool{
	"": true, "text": true, "email": true, "password": true, "search": true,
	"tel": true, "url": true, "number": true, "date": true, "datetime-local": true,
	"month": true, "time": true, "week": true,
}

// IsTextInput reports whether focusing the element raises an on-screen keyboard.
func (n *Node) IsTextInput() bool {
	switch n.Tag {
	case "textarea":
		return true
	case "input":
		t, _ := n.Attribute("type")
		return textInputTypes[strings.ToLower(t)]
	}
	if v, ok := n.Attribute("contenteditable"); ok && v != "false" {
		return true
	}
	return false
}

// FocusableElements returns the focusable descendants of n in document order.
func (n *Node) FocusableElements() []*Node {
	var out []*Node
	for _, c := range n.children {
		c.Walk(func(x *Node) bool {
			if x.Focusable() {
				out = append(out, x)
			}
			return true
		})
	}
	return out
}

// Focus makes n the document's active element.
func (n *Node) Focus() {
	if n.doc != nil && n.Focusable() {
		n.doc.active = n
	}
}
