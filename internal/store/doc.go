// Package store provides abstractions for data persistence. Every
// read, update, or delete of an owned resource goes through an
// owner-scoped method; cross-owner access by id is reported as not
// found, indistinguishable from a missing resource.
package store
