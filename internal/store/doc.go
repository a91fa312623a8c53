// Package store defines the persistence gateway interfaces for clients and
// accounts, along with the sentinel errors shared by all store
// implementations. Services depend on these interfaces, never on a concrete
// backend, so test doubles can be substituted freely.
package store
