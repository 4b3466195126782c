package vtest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Triex/0x1/pkg/dom"
)

// MemDocument is an in-memory dom.Document for tests. It records the
// same structure a browser document would hold and can serialize it back
// to HTML for assertions.
type MemDocument struct{}

// NewDocument creates an in-memory document.
func NewDocument() *MemDocument {
	return &MemDocument{}
}

// CreateElement implements dom.Document.
func (d *MemDocument) CreateElement(tag string) dom.Element {
	return &MemElement{
		Tag:       tag,
		Attrs:     map[string]string{},
		Styles:    map[string]string{},
		listeners: map[string][]func(dom.Event){},
	}
}

// CreateTextNode implements dom.Document.
func (d *MemDocument) CreateTextNode(data string) dom.Text {
	return &MemText{Text: data}
}

// CreateRawNode implements dom.Document. The markup is stored verbatim.
func (d *MemDocument) CreateRawNode(html string) dom.Node {
	return &MemRaw{HTML: html}
}

// Body creates a detached element to use as a mount container.
func (d *MemDocument) Body() *MemElement {
	return d.CreateElement("body").(*MemElement)
}

// MemElement is an in-memory element node.
type MemElement struct {
	Tag      string
	Attrs    map[string]string
	Styles   map[string]string
	Children []dom.Node
	Raw      string // set by SetInnerHTML, replaces Children

	listeners map[string][]func(dom.Event)
}

// NodeName implements dom.Node.
func (e *MemElement) NodeName() string { return e.Tag }

// AppendChild implements dom.Element.
func (e *MemElement) AppendChild(child dom.Node) {
	e.Children = append(e.Children, child)
}

// RemoveChildren implements dom.Element.
func (e *MemElement) RemoveChildren() {
	e.Children = nil
	e.Raw = ""
}

// SetAttribute implements dom.Element.
func (e *MemElement) SetAttribute(name, value string) {
	e.Attrs[name] = value
}

// SetStyle implements dom.Element.
func (e *MemElement) SetStyle(property, value string) {
	e.Styles[property] = value
}

// SetInnerHTML implements dom.Element.
func (e *MemElement) SetInnerHTML(html string) {
	e.Children = nil
	e.Raw = html
}

// AddEventListener implements dom.Element.
func (e *MemElement) AddEventListener(event string, handler func(dom.Event)) {
	e.listeners[event] = append(e.listeners[event], handler)
}

// FirstChild returns the first child node, or nil.
func (e *MemElement) FirstChild() dom.Node {
	if len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// Dispatch fires the listeners bound to the named event, returning how
// many ran.
func (e *MemElement) Dispatch(event string) int {
	handlers := e.listeners[event]
	for _, h := range handlers {
		h(MemEvent{Name: event})
	}
	return len(handlers)
}

// ListenerCount returns the number of listeners bound to the named event.
func (e *MemElement) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// TextContent returns the concatenated text beneath this element.
func (e *MemElement) TextContent() string {
	var b strings.Builder
	for _, child := range e.Children {
		switch c := child.(type) {
		case *MemText:
			b.WriteString(c.Text)
		case *MemElement:
			b.WriteString(c.TextContent())
		}
	}
	return b.String()
}

// OuterHTML serializes the element, its attributes, and its subtree.
// Attributes are emitted in sorted order; styles fold into a style
// attribute.
func (e *MemElement) OuterHTML() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Tag)

	attrs := make(map[string]string, len(e.Attrs)+1)
	for k, v := range e.Attrs {
		attrs[k] = v
	}
	if len(e.Styles) > 0 {
		props := make([]string, 0, len(e.Styles))
		for p := range e.Styles {
			props = append(props, p)
		}
		sort.Strings(props)
		decls := make([]string, 0, len(props))
		for _, p := range props {
			decls = append(decls, p+": "+e.Styles[p])
		}
		attrs["style"] = strings.Join(decls, "; ")
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if attrs[k] == "" {
			fmt.Fprintf(&b, " %s", k)
			continue
		}
		fmt.Fprintf(&b, " %s=%q", k, attrs[k])
	}
	b.WriteByte('>')

	if e.Raw != "" {
		b.WriteString(e.Raw)
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case *MemElement:
			b.WriteString(c.OuterHTML())
		case *MemText:
			b.WriteString(c.Text)
		case *MemRaw:
			b.WriteString(c.HTML)
		}
	}

	fmt.Fprintf(&b, "</%s>", e.Tag)
	return b.String()
}

// MemText is an in-memory text node.
type MemText struct {
	Text string
}

// NodeName implements dom.Node.
func (t *MemText) NodeName() string { return "#text" }

// Data implements dom.Text.
func (t *MemText) Data() string { return t.Text }

// MemRaw holds raw markup attached via CreateRawNode.
type MemRaw struct {
	HTML string
}

// NodeName implements dom.Node.
func (r *MemRaw) NodeName() string { return "#raw" }

// MemEvent is the event value passed to dispatched listeners.
type MemEvent struct {
	Name string
}

// EventType implements dom.Event.
func (e MemEvent) EventType() string { return e.Name }
