// Package prompt provides the interactive target selector.
//
// The selector renders to stderr so stdout stays available for piping
// (e.g. tortest torrc "$(tortest show -i)" style usage), and supports
// fuzzy filtering of the target list.
package prompt
