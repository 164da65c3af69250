// Package store provides file-based persistence for benchmark output.
//
// Results are serialised as indented JSON and written atomically via a
// temporary file and rename. Key material is never stored.
package store
