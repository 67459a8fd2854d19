// Package kernel holds the value objects shared by every aggregate of the
// forwarding domain. Today that is the UUID identifier; it is immutable and
// safe for concurrent use.
package kernel
