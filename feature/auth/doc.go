// Package auth converges remote auth mounts toward a declared set.
//
// A mount's identity is its (type, path) pair; description and tuning are
// mutable fields tracked through a content hash. The push sequence is
// strictly ordered: disable, enable, refresh, tune, configure. Disabling is
// opt-in via the auth-methods-deletion flag in the declared document.
//
// Post-enable configuration is dispatched per method type through the
// registry in feature/auth/methods.
package auth
