// Package vtest provides test helpers for 0x1 components: an in-memory
// dom.Document so the client renderer can be exercised without a
// browser, and assertion helpers over server-rendered HTML.
package vtest
