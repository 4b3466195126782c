package hooks

import (
	"runtime"
	"strings"
	"sync"
)

// renderContext holds the hook state for a goroutine: the stack of
// component instances currently executing and the component-name trail
// used in diagnostics.
//
// Each goroutine gets its own context, so concurrent renders (one request
// per goroutine on the server) never observe each other's current
// component. Within a goroutine only the top of the stack is current;
// a component calling another component's function directly instead of
// returning a node for the renderer to invoke is a contract violation.
type renderContext struct {
	instances []*Instance
	names     []string
}

// renderContexts stores per-goroutine render contexts.
var renderContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine.
// This uses the runtime stack to extract the goroutine ID.
// Note: This is an implementation detail and should not be relied upon externally.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack starts with "goroutine <id> "
	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getRenderContext returns the render context for the current goroutine,
// creating it on first use.
func getRenderContext() *renderContext {
	gid := getGoroutineID()

	if ctx, ok := renderContexts.Load(gid); ok {
		return ctx.(*renderContext)
	}

	ctx := &renderContext{}
	renderContexts.Store(gid, ctx)
	return ctx
}

// SetComponentContext establishes the hook context for one component
// invocation. It resolves the instance registered under identity
// (creating it on first mount), resets its slot cursor, and makes it the
// current instance for this goroutine until the matching
// ClearComponentContext.
//
// Calls nest: a component created during another component's body (the
// dev creation path does this) suspends the outer instance and restores
// it when the inner one is cleared. Clearing must happen on every exit
// path; callers pair Set with a deferred Clear.
func SetComponentContext(identity string) *Instance {
	inst := DefaultRegistry.Obtain(identity)
	inst.begin()

	ctx := getRenderContext()
	ctx.instances = append(ctx.instances, inst)
	return inst
}

// ClearComponentContext ends the current component invocation and
// restores the enclosing one, if any.
func ClearComponentContext() {
	ctx := getRenderContext()
	if n := len(ctx.instances); n > 0 {
		ctx.instances = ctx.instances[:n-1]
	}
	if len(ctx.instances) == 0 && len(ctx.names) == 0 {
		renderContexts.Delete(getGoroutineID())
	}
}

// CurrentInstance returns the instance of the component currently
// executing on this goroutine.
func CurrentInstance() (*Instance, bool) {
	ctx := getRenderContext()
	if n := len(ctx.instances); n > 0 {
		return ctx.instances[n-1], true
	}
	return nil, false
}

// mustCurrentInstance panics with a usable message when a hook is called
// outside a component invocation.
func mustCurrentInstance(hook string) *Instance {
	inst, ok := CurrentInstance()
	if !ok {
		panic(hook + " called outside a component invocation")
	}
	return inst
}

// WithComponentContext runs fn with the hook context established for
// identity, clearing it on every exit path.
func WithComponentContext(identity string, fn func()) {
	SetComponentContext(identity)
	defer ClearComponentContext()
	fn()
}

// PushComponent records a component name on the diagnostic trail.
func PushComponent(name string) {
	ctx := getRenderContext()
	ctx.names = append(ctx.names, name)
}

// PopComponent removes the most recent name from the diagnostic trail.
func PopComponent() {
	ctx := getRenderContext()
	if n := len(ctx.names); n > 0 {
		ctx.names = ctx.names[:n-1]
	}
	if len(ctx.instances) == 0 && len(ctx.names) == 0 {
		renderContexts.Delete(getGoroutineID())
	}
}

// Trail returns the component-name stack joined with " > ", outermost
// first. Used in error panels.
func Trail() string {
	ctx := getRenderContext()
	return strings.Join(ctx.names, " > ")
}
