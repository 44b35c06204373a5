// Package file provides the TOML-backed configuration store.
//
// Values are addressed with flattened dot keys ("search.debounce_ms") and
// written back as nested tables, so the file stays readable:
//
//	[search]
//	debounce_ms = 160
package file
