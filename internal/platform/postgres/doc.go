// Package postgres provides PostgreSQL implementations of the store
// interfaces. Ownership scoping is enforced in the queries themselves:
// owner-scoped statements always carry an owner_id predicate, so a
// cross-owner id is indistinguishable from a missing one.
package postgres
