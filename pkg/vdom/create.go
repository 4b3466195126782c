package vdom

import "fmt"

// FragmentType is the sentinel accepted as the type argument of the
// creation functions to mean "splice children into the parent directly".
type FragmentType struct{}

// Fragment is the fragment sentinel value.
var Fragment = FragmentType{}

// CreateElement is the legacy variadic creation form.
//
// typ may be a tag name string, a ComponentFunc, or the Fragment sentinel.
// One level of slice nesting in children is flattened, and nil and boolean
// entries are dropped. A nil props is treated as an empty map.
//
// Booleans of either value are filtered here rather than at render time,
// so a conditional of the form cond && node never leaves a stray "true"
// in the tree.
func CreateElement(typ any, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}

	kids := flattenChildren(children)

	// A children entry inside props wins over the variadic list. This is
	// an authoring mistake, but it must not crash.
	if pc, ok := props["children"]; ok {
		kids = flattenChildren([]any{pc})
	}

	switch t := typ.(type) {
	case string:
		return &VNode{
			Kind:     KindElement,
			Tag:      t,
			Props:    props,
			Children: kids,
			Key:      keyOf(props),
		}
	case FragmentType, *FragmentType:
		return &VNode{
			Kind:     KindFragment,
			Children: kids,
			Key:      keyOf(props),
		}
	case ComponentFunc:
		return componentNode(t, props, kids, keyOf(props))
	case func(Props) *VNode:
		return componentNode(ComponentFunc(t), props, kids, keyOf(props))
	default:
		// Unusable type. Renderers turn this into a placeholder rather
		// than panicking.
		return &VNode{
			Kind: KindRaw,
			Text: "",
			Name: fmt.Sprintf("%T", typ),
		}
	}
}

// Jsx is the single-props-object creation form used by compiled call
// sites. Children are extracted from props["children"]; a non-slice child
// is wrapped in a one-element sequence. Unlike CreateElement, Jsx does not
// flatten nested slices or filter entries: callers on this path pass
// already-normalized children.
func Jsx(typ any, props Props, key string) *VNode {
	if props == nil {
		props = Props{}
	}

	var kids []*VNode
	switch c := props["children"].(type) {
	case nil:
	case []*VNode:
		kids = c
	case []any:
		kids = make([]*VNode, 0, len(c))
		for _, entry := range c {
			kids = append(kids, toNode(entry))
		}
	default:
		kids = []*VNode{toNode(c)}
	}

	if key == "" {
		key = keyOf(props)
	}

	switch t := typ.(type) {
	case string:
		return &VNode{
			Kind:     KindElement,
			Tag:      t,
			Props:    props,
			Children: kids,
			Key:      key,
		}
	case FragmentType, *FragmentType:
		return &VNode{
			Kind:     KindFragment,
			Children: kids,
			Key:      key,
		}
	case ComponentFunc:
		return componentNode(t, props, kids, key)
	case func(Props) *VNode:
		return componentNode(ComponentFunc(t), props, kids, key)
	default:
		return &VNode{Kind: KindRaw, Name: fmt.Sprintf("%T", typ)}
	}
}

// Jsxs is identical to Jsx. The separate entry point exists only so call
// sites can hint "multiple static children" to tooling.
func Jsxs(typ any, props Props, key string) *VNode {
	return Jsx(typ, props, key)
}

// JsxDEV is the development creation path. String types fast-path to a
// plain element without touching the hook machinery. Component types are
// invoked immediately under the hook context with panic containment: a
// panicking component yields a rendered error panel carrying the component
// name, the panic message, and the component trail, instead of
// propagating. This is the only creation function with containment
// behavior.
func JsxDEV(typ any, props Props, key string, source *SourceLocation) *VNode {
	if tag, ok := typ.(string); ok {
		node := Jsx(tag, props, key)
		node.Source = source
		return node
	}

	var comp ComponentFunc
	switch t := typ.(type) {
	case ComponentFunc:
		comp = t
	case func(Props) *VNode:
		comp = t
	default:
		node := Jsx(typ, props, key)
		node.Source = source
		return node
	}

	if props == nil {
		props = Props{}
	}
	out := InvokeComponent(comp, props, true)
	if out != nil {
		out.Source = source
	}
	return out
}

// componentNode wraps a ComponentFunc in a KindComponent node. The
// normalized children are stored back into props so the component sees
// them under "children" when it is invoked.
func componentNode(comp ComponentFunc, props Props, kids []*VNode, key string) *VNode {
	if len(kids) > 0 {
		props["children"] = kids
	}
	return &VNode{
		Kind:  KindComponent,
		Comp:  comp,
		Props: props,
		Key:   key,
		Name:  componentName(comp),
	}
}

// flattenChildren normalizes a variadic child list: one level of slice
// nesting is flattened, nil and boolean entries are dropped, and scalars
// become text nodes.
func flattenChildren(children []any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case bool:
			continue
		case []any:
			for _, inner := range v {
				if node := toNode(inner); node != nil {
					out = append(out, node)
				}
			}
		case []*VNode:
			for _, inner := range v {
				if inner != nil {
					out = append(out, inner)
				}
			}
		default:
			if node := toNode(child); node != nil {
				out = append(out, node)
			}
		}
	}
	return out
}

// toNode converts a single child entry to a node. nil and booleans map to
// nil, which the renderers skip.
func toNode(child any) *VNode {
	switch v := child.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case *VNode:
		return v
	case string:
		return Text(v)
	case ComponentFunc:
		return &VNode{Kind: KindComponent, Comp: v, Props: Props{}, Name: componentName(v)}
	case func(Props) *VNode:
		return &VNode{Kind: KindComponent, Comp: v, Props: Props{}, Name: componentName(ComponentFunc(v))}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Textf("%v", v)
	case fmt.Stringer:
		return Text(v.String())
	default:
		return nil
	}
}

// keyOf extracts the reconciliation key from props, if present.
func keyOf(props Props) string {
	switch k := props["key"].(type) {
	case string:
		return k
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", k)
	}
}
