// Package vdom defines the element tree produced by 0x1 components and
// the creation functions that build it.
//
// A tree is plain data: VNode is a tagged union over intrinsic elements,
// text, fragments, function components, and raw HTML. Compiled call sites
// use CreateElement, Jsx, Jsxs, and JsxDEV; hand-written Go uses the
// per-tag constructors (Div, Span, Button, ...).
//
// Trees are immutable once created. Rendering is performed by pkg/render
// (HTML strings) and pkg/client (live DOM).
package vdom
