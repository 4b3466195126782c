// Package dom abstracts the document tree the client renderer targets.
//
// The renderer in pkg/client is written against these interfaces so the
// same walk drives a real browser document (the syscall/js implementation
// in this package, compiled for js/wasm) and the in-memory document in
// pkg/vtest used by tests.
package dom

// Event is a dispatched DOM event.
type Event interface {
	// EventType returns the event name, e.g. "click".
	EventType() string
}

// Node is anything attachable to an element.
type Node interface {
	// NodeName returns the tag name for elements, "#text" for text
	// nodes, and "#raw" for raw HTML fragments.
	NodeName() string
}

// Text is a text node.
type Text interface {
	Node
	Data() string
}

// Element is a live element node.
type Element interface {
	Node

	// AppendChild attaches child as the last child.
	AppendChild(child Node)

	// RemoveChildren detaches all children.
	RemoveChildren()

	// SetAttribute sets a plain attribute. Boolean attributes pass ""
	// as the value.
	SetAttribute(name, value string)

	// SetStyle merges one CSS property onto the element's style.
	SetStyle(property, value string)

	// SetInnerHTML replaces the element's content with raw markup.
	SetInnerHTML(html string)

	// AddEventListener binds handler to the named event ("click",
	// "input", ...).
	AddEventListener(event string, handler func(Event))
}

// Document creates nodes.
type Document interface {
	CreateElement(tag string) Element
	CreateTextNode(data string) Text

	// CreateRawNode parses raw markup into an attachable node. Browser
	// implementations parse through a template element; test documents
	// may store the markup verbatim.
	CreateRawNode(html string) Node
}
