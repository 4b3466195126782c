package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Triex/0x1/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Dev selects the development error policy: a component that panics
	// renders as a detailed error panel (name, message, component trail)
	// instead of a terse notice. The panic never propagates either way.
	Dev bool

	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes a node tree to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string. Rendering is
// pure: the same tree always yields the same string, and the tree is
// never mutated.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// ToString renders with the zero configuration. Convenience for callers
// that do not hold a Renderer.
func ToString(node *vdom.VNode) (string, error) {
	return NewRenderer(Config{}).RenderToString(node)
}

// renderNode dispatches rendering based on node kind. A nil node renders
// to nothing: creation already drops null and boolean children, and the
// renderer treats whatever nil reaches it as invisible.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	case vdom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// Void elements self-close and never get a children pass, even if a
	// children list was (incorrectly) supplied.
	if isVoidElement(tag) {
		if _, err := w.Write([]byte(" />")); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		if _, err := w.Write([]byte(rawHTML)); err != nil {
			return err
		}
	} else {
		hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			w.Write([]byte{'\n'})
		}

		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}

		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	escaped := escapeHTML(node.Text)
	_, err := w.Write([]byte(escaped))
	return err
}

// renderFragment renders a fragment's children without a wrapper.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent invokes the component under the hook context and
// renders its output recursively. A panicking component is contained by
// the invocation wrapper and comes back as an error node.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	if node.Comp == nil {
		return r.renderUnknown(w, node)
	}
	output := vdom.InvokeComponent(node.Comp, node.Props, r.config.Dev)
	return r.renderNode(w, output, depth)
}

// renderRaw renders raw HTML without escaping. A raw node with no text
// and a recorded name is the placeholder for an unusable element type.
func (r *Renderer) renderRaw(w io.Writer, node *vdom.VNode) error {
	if node.Text == "" && node.Name != "" {
		return r.renderUnknown(w, node)
	}
	_, err := w.Write([]byte(node.Text))
	return err
}

// renderUnknown emits the placeholder for a node with no usable type.
func (r *Renderer) renderUnknown(w io.Writer, node *vdom.VNode) error {
	label := node.Name
	if label == "" {
		label = node.Kind.String()
	}
	_, err := fmt.Fprintf(w, "<!-- unable to render unknown element type: %s -->", escapeHTML(label))
	return err
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") {
			continue
		}

		// Handlers are bound client-side, never serialized. A marker
		// attribute is emitted below so hydration can find them.
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			continue
		}

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		case "dangerouslySetInnerHTML":
			// Handled separately in renderElement
			continue
		case "key", "children":
			// Internal, not rendered
			continue
		}

		// Boolean values: true emits the bare attribute name, false
		// omits the attribute entirely.
		if boolValue, ok := value.(bool); ok {
			if boolValue {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
			continue
		}

		strValue := attrToString(value)
		if strValue != "" {
			escaped := escapeAttr(strValue)
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escaped); err != nil {
				return err
			}
		}
	}

	// Event marker attributes for client-side binding
	for _, key := range keys {
		if strings.HasPrefix(key, "on") && isEventHandler(node.Props[key]) {
			eventName := strings.ToLower(key[2:]) // onclick -> click
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, eventName); err != nil {
				return err
			}
		}
	}

	return nil
}

// isEventHandler returns true if the value looks like an event handler.
func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case func():
		return true
	case func(any):
		return true
	case vdom.EventHandler:
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// attrToString converts an attribute value to a string. Style maps
// serialize to CSS text with deterministic property order.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case map[string]string:
		return styleToString(v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// styleToString serializes a style map as CSS declarations.
func styleToString(style map[string]string) string {
	props := make([]string, 0, len(style))
	for prop := range style {
		props = append(props, prop)
	}
	sort.Strings(props)

	var b strings.Builder
	for i, prop := range props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(prop)
		b.WriteString(": ")
		b.WriteString(style[prop])
	}
	return b.String()
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
