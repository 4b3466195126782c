package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Function component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the element tree node produced by the creation functions.
// A node is immutable once created; re-rendering builds a fresh tree
// rather than mutating an existing one.
type VNode struct {
	Kind     VKind         // Node type
	Tag      string        // Element tag name (e.g., "div")
	Props    Props         // Attributes and event handlers
	Children []*VNode      // Child nodes, in render order
	Key      string        // Reconciliation key
	Text     string        // For KindText and KindRaw
	Comp     ComponentFunc // For KindComponent
	Name     string        // Component display name, used in diagnostics

	// Source is the authoring location attached by the dev creation
	// path. Never required for rendering.
	Source *SourceLocation
}

// Props holds attributes, event handlers, and the style map.
type Props map[string]any

// ComponentFunc is a function component. It receives its props (with the
// normalized children available under "children") and returns a new tree.
//
// Components must compose by returning nodes, never by calling each other
// directly: the hook context tracks a single current component per
// goroutine, and a direct call would overwrite it mid-render.
type ComponentFunc func(Props) *VNode

// SourceLocation records where a node was authored. Attached only by
// JsxDEV for diagnostics.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// IsInteractive returns true if this node has event handler props.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}
