//go:build js && wasm

package dom

import "syscall/js"

// JSDocument wraps the browser document.
type JSDocument struct {
	doc js.Value
}

// Browser returns the Document backed by the global browser document.
func Browser() *JSDocument {
	return &JSDocument{doc: js.Global().Get("document")}
}

// ByID returns the element with the given id, or nil if absent.
func (d *JSDocument) ByID(id string) Element {
	v := d.doc.Call("getElementById", id)
	if !v.Truthy() {
		return nil
	}
	return &JSElement{val: v}
}

// CreateElement implements Document.
func (d *JSDocument) CreateElement(tag string) Element {
	return &JSElement{val: d.doc.Call("createElement", tag)}
}

// CreateTextNode implements Document.
func (d *JSDocument) CreateTextNode(data string) Text {
	return &JSText{val: d.doc.Call("createTextNode", data)}
}

// CreateRawNode implements Document. The markup is parsed through a
// template element and the resulting fragment returned.
func (d *JSDocument) CreateRawNode(html string) Node {
	tpl := d.doc.Call("createElement", "template")
	tpl.Set("innerHTML", html)
	return &JSFragment{val: tpl.Get("content")}
}

// JSElement wraps a browser element.
type JSElement struct {
	val js.Value

	// funcs keeps bound listeners alive for the element's lifetime.
	funcs []js.Func
}

// Value exposes the underlying js.Value for interop.
func (e *JSElement) Value() js.Value { return e.val }

// NodeName implements Node.
func (e *JSElement) NodeName() string {
	return e.val.Get("tagName").String()
}

// AppendChild implements Element.
func (e *JSElement) AppendChild(child Node) {
	switch c := child.(type) {
	case *JSElement:
		e.val.Call("appendChild", c.val)
	case *JSText:
		e.val.Call("appendChild", c.val)
	case *JSFragment:
		e.val.Call("appendChild", c.val)
	}
}

// RemoveChildren implements Element.
func (e *JSElement) RemoveChildren() {
	e.val.Set("textContent", "")
}

// SetAttribute implements Element.
func (e *JSElement) SetAttribute(name, value string) {
	e.val.Call("setAttribute", name, value)
}

// SetStyle implements Element.
func (e *JSElement) SetStyle(property, value string) {
	e.val.Get("style").Call("setProperty", property, value)
}

// SetInnerHTML implements Element.
func (e *JSElement) SetInnerHTML(html string) {
	e.val.Set("innerHTML", html)
}

// AddEventListener implements Element.
func (e *JSElement) AddEventListener(event string, handler func(Event)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		handler(&JSEvent{name: event, val: ev})
		return nil
	})
	e.funcs = append(e.funcs, fn)
	e.val.Call("addEventListener", event, fn)
}

// JSText wraps a browser text node.
type JSText struct {
	val js.Value
}

// NodeName implements Node.
func (t *JSText) NodeName() string { return "#text" }

// Data implements Text.
func (t *JSText) Data() string { return t.val.Get("data").String() }

// JSFragment wraps a document fragment produced from raw markup.
type JSFragment struct {
	val js.Value
}

// NodeName implements Node.
func (f *JSFragment) NodeName() string { return "#raw" }

// JSEvent wraps a browser event.
type JSEvent struct {
	name string
	val  js.Value
}

// EventType implements Event.
func (e *JSEvent) EventType() string { return e.name }

// Value exposes the underlying js.Value for interop.
func (e *JSEvent) Value() js.Value { return e.val }
