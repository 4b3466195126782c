// Package client materializes node trees into a live document.
//
// Mount is a full re-render of the target container on every call; it
// walks the tree the same way pkg/render does, but produces dom nodes
// and real event listeners instead of markup. The walk is written
// against the pkg/dom interfaces so it runs both in the browser (wasm)
// and against the in-memory document in pkg/vtest.
package client
