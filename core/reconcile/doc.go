// Package reconcile provides a generic diff engine for converging a remote
// resource set toward a declared one.
//
// Given two sets of resources sharing an identity notion (the Keyed
// interface), Diff computes three disjoint sets:
//
//  1. ToCreate: declared resources missing remotely.
//  2. ToRemove: remote resources with no declared counterpart.
//  3. Matched: resources present on both sides, paired for update
//     inspection by the caller.
//
// The engine is deliberately free of any remote-service knowledge: it is
// pure set algebra over identity keys. Resource-kind specific concerns
// (what counts as identity, how change is detected, in what order
// mutations are applied) live with the callers in feature/auth and
// feature/policies.
//
// # Usage Example
//
//	cs := reconcile.Diff(declared, observed)
//	for _, m := range cs.ToCreate { ... enable ... }
//	for _, m := range cs.ToRemove { ... disable ... }
//	for _, pair := range cs.Matched { ... compare hashes, maybe tune ... }
package reconcile
