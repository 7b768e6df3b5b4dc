// Package kv moves key/value secret trees around without diffing them.
//
// The Migrator copies a subtree from one secrets-service instance to
// another at identical paths; the Snapshotter exports a subtree as JSON
// documents into an object-storage bucket. Both perform a full copy on
// every invocation and never log secret content.
package kv
