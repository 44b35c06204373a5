// Package dataset implements driven.DatasetSource for the dashboard's
// search-data file.
//
// Sources:
//   - FileSource: a local .json, .yaml or .yml file
//   - HTTPSource: a single GET against the published site
//
// Decoding is lenient. Fields that are null become empty strings, and
// numbers or booleans become their text, so a slightly malformed dataset
// still loads. Watcher reports changes to a local dataset file.
package dataset
