// Package config loads and validates the seqid configuration file.
//
// Configuration is YAML on disk. After decoding, the value is unified
// with an embedded CUE schema, so malformed shapes (empty category
// lists, duplicate categories, blank names) are rejected at startup
// rather than surfacing as odd behavior later. Cross-field rules that
// the schema cannot express (the storefront category must be one of the
// configured categories) are checked in Go.
package config
