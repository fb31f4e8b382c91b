// Package platform provides cross-platform filesystem helpers: the requested
// permission bits for generated projects, umask-aware file modes and a Chmod
// that is a no-op on Windows.
package platform
