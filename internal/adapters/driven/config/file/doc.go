// Package file provides the TOML-backed configuration for Marquee.
//
// Configuration lives at ~/.marquee/config.toml and covers the two remote
// collaborators (catalog API and asset host), the discovery defaults (page
// size, debounce quiet period) and the signed-in user id used for rating
// writes.
//
// The Store is safe for concurrent use. A Watcher built on fsnotify lets
// the running TUI pick up config edits without a restart.
package file
