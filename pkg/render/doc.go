// Package render serializes node trees to HTML on the server.
//
// The renderer is a synchronous tree walk: text escapes, fragments
// splice, components are invoked under the hook context and their output
// rendered in place. Event handler props are never serialized; a
// data-on-<event> marker is emitted so the client can bind the real
// listener after hydration. Component panics are contained and rendered
// as error markup, detailed in dev mode and terse otherwise.
package render
