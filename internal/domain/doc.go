// Package domain defines the core business entities of the clientbook API:
// clients and the accounts they own.
package domain
