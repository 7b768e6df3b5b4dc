// Package methods holds the per-type configurators applied to auth mounts
// after they are enabled, and the registry that dispatches on the mount's
// type tag. Absence of a registry entry is a no-op, not an error.
package methods
