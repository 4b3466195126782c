// Package hooks gives function components per-instance state without a
// class or a captured closure.
//
// Before a component body runs, the renderer establishes a hook context
// for the component's identity (SetComponentContext); every hook call
// inside the body then reads or writes the next positional slot of that
// identity's Instance; afterwards the context is cleared on every exit
// path (ClearComponentContext, always deferred). Instances live in a
// Registry that persists across renders, so the Nth UseState call of a
// pass sees the value the Nth call of the previous pass wrote.
//
// Contract: hook call order must be stable across renders of one
// identity, and components must compose by returning nodes rather than
// invoking each other directly. Neither rule is defended at runtime.
package hooks
