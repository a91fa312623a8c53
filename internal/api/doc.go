// Package api implements the HTTP request handlers for the clientbook API.
// Handlers are thin adapters: they extract path and query parameters and
// request bodies, invoke the resolution services, and map service errors to
// HTTP status codes. All validation and branching lives in the services.
package api
