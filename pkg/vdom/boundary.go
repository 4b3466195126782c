package vdom

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"

	"github.com/Triex/0x1/pkg/hooks"
)

// InvokeComponent calls a function component with the hook context
// established for its identity, and contains any panic the component body
// raises. Both renderers and JsxDEV route component invocation through
// here so error containment behaves the same everywhere.
//
// In dev mode the replacement node is a styled panel carrying the
// component name, the panic message, and the component trail. In prod it
// is a terse inline notice; the detail still goes to the log.
func InvokeComponent(comp ComponentFunc, props Props, dev bool) (out *VNode) {
	name := componentName(comp)
	hooks.PushComponent(name)
	defer hooks.PopComponent()

	hooks.SetComponentContext(componentIdentity(comp, props))
	defer hooks.ClearComponentContext()

	defer func() {
		if r := recover(); r != nil {
			trail := hooks.Trail()
			log.Printf("0x1: component %s panicked: %v (%s)", name, r, trail)
			out = ErrorNode(name, fmt.Sprintf("%v", r), trail, dev)
		}
	}()

	return comp(props)
}

// ErrorNode builds the replacement tree rendered in place of a component
// that panicked.
func ErrorNode(name, message, trail string, dev bool) *VNode {
	if !dev {
		return &VNode{
			Kind:  KindElement,
			Tag:   "div",
			Props: Props{"class": "0x1-error"},
			Children: []*VNode{
				Text("Something went wrong rendering this component."),
			},
		}
	}

	panel := Props{
		"class": "0x1-error-panel",
		"style": map[string]string{
			"border":     "2px solid #dc2626",
			"background": "#fef2f2",
			"color":      "#7f1d1d",
			"padding":    "12px",
			"font":       "13px/1.5 monospace",
		},
	}
	children := []*VNode{
		{Kind: KindElement, Tag: "strong", Props: Props{}, Children: []*VNode{Textf("%s crashed", name)}},
		{Kind: KindElement, Tag: "pre", Props: Props{}, Children: []*VNode{Text(message)}},
	}
	if trail != "" {
		children = append(children, &VNode{
			Kind:     KindElement,
			Tag:      "small",
			Props:    Props{},
			Children: []*VNode{Text(trail)},
		})
	}
	return &VNode{Kind: KindElement, Tag: "div", Props: panel, Children: children}
}

// componentName derives a display name for a component function from its
// symbol name. Anonymous functions report as "anonymous".
func componentName(comp ComponentFunc) string {
	if comp == nil {
		return "nil"
	}
	fn := runtime.FuncForPC(reflect.ValueOf(comp).Pointer())
	if fn == nil {
		return "anonymous"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" {
		return "anonymous"
	}
	return name
}

// componentIdentity derives the stable identity under which hook slots
// persist across renders. Two mounts of the same component function share
// state unless the author distinguishes them with a key prop.
func componentIdentity(comp ComponentFunc, props Props) string {
	id := fmt.Sprintf("%s@%x", componentName(comp), reflect.ValueOf(comp).Pointer())
	if key := keyOf(props); key != "" {
		id += "/" + key
	}
	return id
}
