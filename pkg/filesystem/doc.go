// Package filesystem provides filesystem implementations for appin.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem. The in-memory filesystem used
// by tests lives in pkg/testutil.
package filesystem
