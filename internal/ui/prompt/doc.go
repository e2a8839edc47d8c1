// Package prompt asks for the arguments a one-shot subcommand was not given.
//
// Each prompt is a small bubbletea program drawn on stderr, so stdout stays
// clean for the command's result:
//   - [Confirm]: yes/no, defaulting to no
//   - [TextInput]: a single line, optionally validated before it is accepted
//   - [Select]: one entry of a filterable list, starting on the last entry
package prompt
