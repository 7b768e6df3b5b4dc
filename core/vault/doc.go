// Package vault wraps the HashiCorp Vault API client behind a narrow
// interface covering exactly the operations vault-manager needs: auth mount
// listing/enabling/disabling/tuning, policy CRUD, and recursive secret
// tree access.
//
// # Client Interface
//
// The Client interface abstracts the underlying service, making it easy to
// mock remote interactions for unit testing (see core/vault/mocks).
//
// # Authentication Gate
//
// A client instance must be authenticated exactly once before use; any
// operation attempted earlier fails fast with ErrNotAuthenticated.
//
// # Dry Mode
//
// When constructed with Dry set, every mutating operation (enable, disable,
// tune, policy set/delete, secret write) logs what it would have done and
// returns nil, while read operations behave normally. Diff computation on
// top of the client therefore selects identical change sets dry or not.
//
// # Usage
//
//	client, err := vault.NewClient(vault.Options{Addr: addr, Token: token}, log)
//	if err := client.Authenticate(ctx); err != nil { ... }
//	mounts, err := client.ListAuthMounts(ctx)
package vault
