// Package devices persists device records under a single key of the
// key-value store. Every mutation is one atomic read-modify-write.
package devices
