// Package conf loads the line-oriented key-value dialect used by the
// integration-test settings files.
//
// The dialect is one statement per line: `key value` for scalars,
// `namespace IDENTIFIER => value` for identifier-qualified entries, `#` for
// comments, and `|`-prefixed lines continuing the previous entry's value.
// Tables are immutable once loaded; layering override files on top of a base
// file goes through Merge, which returns a new table.
package conf
