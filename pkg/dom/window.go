package dom

import "regexp"

// Document owns a tree of nodes and tracks focus.
type Document struct {
	EventTarget

	Body   *Node
	active *Node
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	d := &Document{}
	d.Body = NewElement("body")
	d.Body.setDocument(d)
	return d
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Node {
	return d.active
}

// Blur clears focus.
func (d *Document) Blur() {
	d.active = nil
}

// DispatchEvent delivers e to document listeners only.
func (d *Document) DispatchEvent(e *Event) {
	d.fire(e)
}

// Window is the viewport a document is shown in.
type Window struct {
	EventTarget

	Document    *Document
	InnerWidth  float64
	InnerHeight float64
	UserAgent   string
}

// NewWindow creates a window with a fresh document.
func NewWindow(width, height float64) *Window {
	return &Window{
		Document:    NewDocument(),
		InnerWidth:  width,
		InnerHeight: height,
	}
}

// Resize updates the viewport size and dispatches a resize event.
func (w *Window) Resize(width, height float64) {
	w.InnerWidth = width
	w.InnerHeight = height
	w.DispatchEvent(&Event{Type: EventResize})
}

// DispatchEvent delivers e to window listeners.
func (w *Window) DispatchEvent(e *Event) {
	w.fire(e)
}

var mobileUserAgent = regexp.MustCompile(`(?i)android|iphone|ipad|ipod|mobile|silk|kindle|blackberry|opera mini`)

// IsMobile reports whether the user agent belongs to a touch device.
func (w *Window) IsMobile() bool {
	return mobileUserAgent.MatchString(w.UserAgent)
}
