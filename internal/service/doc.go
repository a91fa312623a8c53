// Package service implements the resolution layer between the HTTP transport
// and the persistence gateways. It parses and validates externally supplied
// identifiers and filter parameters, enforces existence gates (a client must
// exist before its accounts are addressable), dispatches filtered account
// queries to the right store variant, and translates malformed input and
// persistence failures into a small typed error taxonomy:
//
//   - ErrBadParameter: input failed to parse or failed semantic validation
//   - ErrClientNotFound: an existence or non-emptiness precondition failed
//   - ErrDatabaseFailure: the persistence layer reported an I/O-level error
//
// Every multi-step operation is a linear pipeline of gated stages; the first
// failing gate short-circuits the rest, and no mutation happens before the
// single delegate call at the end of the pipeline.
package service
