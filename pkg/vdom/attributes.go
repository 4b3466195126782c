package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassName sets the className prop. The renderers translate it to the
// HTML class attribute; it exists for parity with compiled call sites.
func ClassName(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute from CSS text
// (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// StyleMap sets the style attribute from a property map.
func StyleMap(style map[string]string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") -> data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute on a label.
func For(id string) Attr { return attr("for", id) }

// HTMLFor sets the htmlFor prop; renderers translate it to for.
func HTMLFor(id string) Attr { return attr("htmlFor", id) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked boolean attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Required sets the required boolean attribute.
func Required(required bool) Attr { return attr("required", required) }

// ReadOnly sets the readonly boolean attribute.
func ReadOnly(readonly bool) Attr { return attr("readonly", readonly) }

// Selected sets the selected boolean attribute.
func Selected(selected bool) Attr { return attr("selected", selected) }

// Multiple sets the multiple boolean attribute.
func Multiple(multiple bool) Attr { return attr("multiple", multiple) }

// Behavior attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// DangerouslySetInnerHTML injects raw HTML into an element, bypassing
// children rendering. The name is deliberately unpleasant.
func DangerouslySetInnerHTML(html string) Attr {
	return attr("dangerouslySetInnerHTML", html)
}
