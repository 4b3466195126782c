package client

import (
	"fmt"
	"log"
	"strings"

	"github.com/Triex/0x1/pkg/dom"
	"github.com/Triex/0x1/pkg/hooks"
	"github.com/Triex/0x1/pkg/vdom"
)

// Options configures the client renderer.
type Options struct {
	// Dev selects the development error policy, matching pkg/render.
	Dev bool
}

// Mount replaces the container's entire content with the rendered input.
// Every call is a full re-render of that subtree; there is no diffing.
//
// The input may be a *vdom.VNode tree, an already-realized dom.Node, or
// a raw markup string. nil input logs a warning and does nothing. Any
// panic during rendering is contained and shown inline in the container
// instead of propagating, so a broken component does not blank sibling
// content.
func Mount(doc dom.Document, input any, container dom.Element) {
	MountWith(doc, input, container, Options{Dev: true})
}

// MountWith is Mount with explicit options.
func MountWith(doc dom.Document, input any, container dom.Element, opts Options) {
	if input == nil {
		log.Printf("0x1: Mount called with nil input, nothing to render")
		return
	}
	if container == nil {
		log.Printf("0x1: Mount called with nil container")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("0x1: render failed: %v", r)
			container.SetInnerHTML(errorMarkup(r, opts.Dev))
		}
	}()

	switch v := input.(type) {
	case dom.Node:
		container.RemoveChildren()
		container.AppendChild(v)
		return
	case string:
		// Literal strings are trusted as markup here. Use MountText for
		// untrusted text.
		container.SetInnerHTML(v)
		return
	case *vdom.VNode:
		nodes := build(doc, v, opts)
		container.RemoveChildren()
		for _, n := range nodes {
			container.AppendChild(n)
		}
		return
	default:
		container.RemoveChildren()
		container.AppendChild(doc.CreateTextNode(fmt.Sprintf("unable to render unknown element type: %T", input)))
	}
}

// MountText renders a string as a text node rather than markup.
func MountText(doc dom.Document, text string, container dom.Element) {
	if container == nil {
		log.Printf("0x1: MountText called with nil container")
		return
	}
	container.RemoveChildren()
	container.AppendChild(doc.CreateTextNode(text))
}

// Unmount clears the container and releases the hook state registered
// under the given component identities, running their effect cleanups.
func Unmount(container dom.Element, identities ...string) {
	if container != nil {
		container.RemoveChildren()
	}
	for _, id := range identities {
		hooks.Release(id)
	}
}

// build constructs the DOM nodes for one tree node, in document order.
// Returning the nodes (rather than rendering into a scratch container
// and relocating) keeps attachment order and listener bindings in one
// place.
func build(doc dom.Document, node *vdom.VNode, opts Options) []dom.Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindText:
		return []dom.Node{doc.CreateTextNode(node.Text)}

	case vdom.KindRaw:
		if node.Text == "" && node.Name != "" {
			return []dom.Node{doc.CreateTextNode("unable to render unknown element type: " + node.Name)}
		}
		return []dom.Node{doc.CreateRawNode(node.Text)}

	case vdom.KindFragment:
		var out []dom.Node
		for _, child := range node.Children {
			out = append(out, build(doc, child, opts)...)
		}
		return out

	case vdom.KindComponent:
		if node.Comp == nil {
			return []dom.Node{doc.CreateTextNode("unable to render unknown element type")}
		}
		output := vdom.InvokeComponent(node.Comp, node.Props, opts.Dev)
		return build(doc, output, opts)

	case vdom.KindElement:
		return []dom.Node{buildElement(doc, node, opts)}

	default:
		return []dom.Node{doc.CreateTextNode(fmt.Sprintf("unable to render unknown element type: %s", node.Kind))}
	}
}

// buildElement materializes one intrinsic element: attributes, styles,
// listeners, then children in order.
func buildElement(doc dom.Document, node *vdom.VNode, opts Options) dom.Element {
	el := doc.CreateElement(node.Tag)

	for key, value := range node.Props {
		switch {
		case key == "children" || key == "key" || strings.HasPrefix(key, "_"):
			continue

		case key == "dangerouslySetInnerHTML":
			if html, ok := value.(string); ok {
				el.SetInnerHTML(html)
			}

		case key == "className" || key == "class":
			el.SetAttribute("class", fmt.Sprintf("%v", value))

		case key == "htmlFor":
			el.SetAttribute("for", fmt.Sprintf("%v", value))

		case key == "style":
			applyStyle(el, value)

		case strings.HasPrefix(key, "on"):
			if handler := asListener(value); handler != nil {
				el.AddEventListener(strings.ToLower(key[2:]), handler)
			} else {
				el.SetAttribute(key, fmt.Sprintf("%v", value))
			}

		default:
			if b, ok := value.(bool); ok {
				if b {
					el.SetAttribute(key, "")
				}
				continue
			}
			el.SetAttribute(key, fmt.Sprintf("%v", value))
		}
	}

	if _, ok := node.Props["dangerouslySetInnerHTML"]; ok {
		return el
	}
	if vdom.IsVoidElement(node.Tag) {
		return el
	}

	for _, child := range node.Children {
		for _, built := range build(doc, child, opts) {
			el.AppendChild(built)
		}
	}
	return el
}

// applyStyle merges a style prop onto the element. Maps merge property
// by property; strings are parsed as CSS declarations.
func applyStyle(el dom.Element, value any) {
	switch style := value.(type) {
	case map[string]string:
		for prop, v := range style {
			el.SetStyle(prop, v)
		}
	case string:
		for _, decl := range strings.Split(style, ";") {
			prop, v, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			el.SetStyle(strings.TrimSpace(prop), strings.TrimSpace(v))
		}
	}
}

// asListener adapts the handler shapes accepted in props to the dom
// listener signature. Non-function values return nil.
func asListener(value any) func(dom.Event) {
	switch f := value.(type) {
	case func(dom.Event):
		return f
	case func():
		return func(dom.Event) { f() }
	case func(any):
		return func(e dom.Event) { f(e) }
	case vdom.EventHandler:
		return asListener(f.Handler)
	default:
		return nil
	}
}

// errorMarkup is the inline panel shown when rendering panics.
func errorMarkup(r any, dev bool) string {
	if !dev {
		return `<div class="0x1-error">Something went wrong rendering this view.</div>`
	}
	msg := fmt.Sprintf("%v", r)
	msg = strings.ReplaceAll(msg, "<", "&lt;")
	msg = strings.ReplaceAll(msg, ">", "&gt;")
	return `<div class="0x1-error-panel" style="border: 2px solid #dc2626; background: #fef2f2; color: #7f1d1d; padding: 12px; font: 13px/1.5 monospace"><strong>render failed</strong><pre>` + msg + `</pre></div>`
}
