// Package types holds the small set of interfaces shared across appin
// packages. Keeping them here avoids import cycles between the stores,
// the writer and the command layer.
package types
