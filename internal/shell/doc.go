// Package shell contains the view-state controller behind the storefront shell.
//
// Allowed here:
// - drawer visibility, filter preference, menu anchor and role-gated actions
// - the persistence hook that keeps the filter preference durable
//
// Not allowed here:
// - rendering, key handling or terminal layout (internal/tui)
// - concrete storage backends (internal/prefs)
package shell
