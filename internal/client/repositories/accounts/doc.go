// Package accounts persists the account directory under a single key of the
// key-value store.
package accounts
