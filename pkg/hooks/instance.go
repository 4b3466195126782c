package hooks

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Instance is the per-identity hook storage for a function component.
// Slots are positional: the Nth hook call of a pass reads the Nth slot
// recorded on the first pass. Reordering hook calls between renders of
// the same identity is undefined behavior; it is a documented contract
// violation, not something the runtime defends against.
type Instance struct {
	identity string
	stamp    string // ULID minted at first mount, for logs and debugging

	mu     sync.Mutex
	slots  []any
	cursor int
}

// Identity returns the stable identity this instance is registered under.
func (in *Instance) Identity() string {
	return in.identity
}

// Stamp returns the unique ID minted when the instance was first mounted.
func (in *Instance) Stamp() string {
	return in.stamp
}

// begin resets the slot cursor for a new pass. State in the slots is
// preserved; only the position counter restarts.
func (in *Instance) begin() {
	in.mu.Lock()
	in.cursor = 0
	in.mu.Unlock()
}

// nextSlot returns the slot at the current cursor position, creating it
// with create on first use, and advances the cursor.
func (in *Instance) nextSlot(create func() any) any {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.cursor >= len(in.slots) {
		in.slots = append(in.slots, create())
	}
	slot := in.slots[in.cursor]
	in.cursor++
	return slot
}

// dispose runs effect cleanups and drops all slots. Called on unmount.
func (in *Instance) dispose() {
	in.mu.Lock()
	slots := in.slots
	in.slots = nil
	in.cursor = 0
	in.mu.Unlock()

	for _, slot := range slots {
		if cell, ok := slot.(*effectCell); ok {
			cell.runCleanup()
		}
	}
}

// Registry maps component identities to instances. The registry outlives
// individual renders so hook state persists; entries are removed when the
// owning mount point is unmounted (Release).
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
}

// DefaultRegistry is the process registry used by the renderers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]*Instance)}
}

// Obtain returns the instance registered under identity, creating one on
// first mount.
func (r *Registry) Obtain(identity string) *Instance {
	r.mu.RLock()
	inst, ok := r.instances[identity]
	r.mu.RUnlock()
	if ok {
		return inst
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok := r.instances[identity]; ok {
		return inst
	}
	inst = &Instance{
		identity: identity,
		stamp:    ulid.Make().String(),
	}
	r.instances[identity] = inst
	return inst
}

// Release disposes the instance registered under identity: effect
// cleanups run and the hook state is dropped. The next Obtain for the
// same identity starts fresh.
func (r *Registry) Release(identity string) {
	r.mu.Lock()
	inst, ok := r.instances[identity]
	delete(r.instances, identity)
	r.mu.Unlock()

	if ok {
		inst.dispose()
	}
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Release disposes an identity in the default registry.
func Release(identity string) {
	DefaultRegistry.Release(identity)
}
