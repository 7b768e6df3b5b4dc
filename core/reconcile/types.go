package reconcile

// Keyed is implemented by resources that expose a stable identity key.
// Two resources with the same key are the same resource for diffing
// purposes, regardless of any mutable fields they carry.
type Keyed interface {
	Key() string
}

// Pair couples a declared resource with its observed counterpart.
// Pairs are candidates for update inspection; whether an update is needed
// is decided by the caller (e.g. by comparing content hashes).
type Pair[T Keyed] struct {
	// Declared is the resource as derived from local configuration.
	Declared T
	// Observed is the resource as fetched from the remote service.
	Observed T
}

// Changeset represents the disjoint outcome of diffing a declared set
// against an observed set of resources of the same kind.
type Changeset[T Keyed] struct {
	// ToCreate contains declared resources absent from the observed set.
	ToCreate []T
	// ToRemove contains observed resources absent from the declared set.
	ToRemove []T
	// Matched contains resources present on both sides, paired by key.
	Matched []Pair[T]
}

// Summary provides aggregate counts for a changeset.
type Summary struct {
	// Create is the number of resources to create.
	Create int
	// Remove is the number of resources to remove.
	Remove int
	// Matched is the number of update candidates.
	Matched int
}

// Summary computes aggregate counts for the changeset.
func (c *Changeset[T]) Summary() Summary {
	return Summary{
		Create:  len(c.ToCreate),
		Remove:  len(c.ToRemove),
		Matched: len(c.Matched),
	}
}

// HasChanges returns true if the changeset requires any create or remove.
func (c *Changeset[T]) HasChanges() bool {
	return len(c.ToCreate) > 0 || len(c.ToRemove) > 0
}
