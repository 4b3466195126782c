// Package dev implements the hot-reload development server: a polling
// file watcher, a WebSocket reload broadcaster, and a chi mux tying the
// application handler, static files, and tooling endpoints together.
package dev
