// Package policies synchronizes access-control policies between a local
// two-level directory layout (<root>/<category>/<name>.hcl) and the flat
// remote namespace ("category_name_policy").
//
// Only remote names produced by the codec are managed; anything else is
// foreign and is never deleted, overwritten, or mirrored locally.
package policies
