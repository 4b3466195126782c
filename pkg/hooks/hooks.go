package hooks

import "sync"

// stateCell is the slot storage for UseState.
type stateCell[T any] struct {
	mu    sync.Mutex
	value T
}

func (c *stateCell[T]) get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *stateCell[T]) set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// UseState returns the current value of a persistent state cell and a
// setter for it. The cell is created with initial on the first pass and
// survives across invocations of the same component identity. The setter
// may be called from event handlers after the render pass has finished;
// the new value is observed on the next invocation.
func UseState[T any](initial T) (T, func(T)) {
	inst := mustCurrentInstance("UseState")
	slot := inst.nextSlot(func() any {
		return &stateCell[T]{value: initial}
	})
	cell := slot.(*stateCell[T])
	return cell.get(), cell.set
}

// effectCell is the slot storage for UseEffect.
type effectCell struct {
	mu      sync.Mutex
	deps    []any
	cleanup func()
	ran     bool
}

func (c *effectCell) runCleanup() {
	c.mu.Lock()
	cleanup := c.cleanup
	c.cleanup = nil
	c.mu.Unlock()
	if cleanup != nil {
		cleanup()
	}
}

// UseEffect runs setup when the dependency list changes, and always on
// the first pass. setup may return a cleanup function, which runs before
// the next setup and when the component identity is released. With no
// deps the effect runs on every pass; pin it with a constant dep to run
// it once.
func UseEffect(setup func() func(), deps ...any) {
	inst := mustCurrentInstance("UseEffect")
	slot := inst.nextSlot(func() any {
		return &effectCell{}
	})
	cell := slot.(*effectCell)

	cell.mu.Lock()
	run := !cell.ran || len(deps) == 0 || !depsEqual(cell.deps, deps)
	cleanup := cell.cleanup
	if run {
		cell.deps = deps
		cell.ran = true
		cell.cleanup = nil
	}
	cell.mu.Unlock()

	if run {
		if cleanup != nil {
			cleanup()
		}
		next := setup()
		cell.mu.Lock()
		cell.cleanup = next
		cell.mu.Unlock()
	}
}

// memoCell is the slot storage for UseMemo and UseCallback.
type memoCell struct {
	deps  []any
	value any
	set   bool
}

// UseMemo returns the memoized result of compute, recomputing only when
// the dependency list changes.
func UseMemo[T any](compute func() T, deps ...any) T {
	inst := mustCurrentInstance("UseMemo")
	slot := inst.nextSlot(func() any {
		return &memoCell{}
	})
	cell := slot.(*memoCell)

	if !cell.set || !depsEqual(cell.deps, deps) {
		cell.value = compute()
		cell.deps = deps
		cell.set = true
	}
	return cell.value.(T)
}

// UseCallback returns a stable reference to fn across passes, replaced
// only when the dependency list changes.
func UseCallback[T any](fn T, deps ...any) T {
	inst := mustCurrentInstance("UseCallback")
	slot := inst.nextSlot(func() any {
		return &memoCell{}
	})
	cell := slot.(*memoCell)

	if !cell.set || !depsEqual(cell.deps, deps) {
		cell.value = fn
		cell.deps = deps
		cell.set = true
	}
	return cell.value.(T)
}

// Ref is a mutable box whose identity is stable across passes.
type Ref[T any] struct {
	Current T
}

// UseRef returns a ref holding initial on the first pass. Writes to
// Current do not trigger anything; the box just persists.
func UseRef[T any](initial T) *Ref[T] {
	inst := mustCurrentInstance("UseRef")
	slot := inst.nextSlot(func() any {
		return &Ref[T]{Current: initial}
	})
	return slot.(*Ref[T])
}

// depsEqual reports whether two dependency lists are shallowly equal.
func depsEqual(oldDeps, newDeps []any) bool {
	if len(oldDeps) != len(newDeps) {
		return false
	}
	for i, old := range oldDeps {
		if old != newDeps[i] {
			return false
		}
	}
	return true
}
