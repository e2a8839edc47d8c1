// Package transfer copies and deletes save directory trees with progress
// reporting.
//
// Progress is counted in filesystem entries rather than bytes: the number
// of directories plus the number of regular files is known up front from a
// directory walk (or the source's stat sidecar), which keeps the bar smooth
// for trees made of many small files.
//
// No operation rolls back. A failed copy leaves a partial destination and a
// failed multi-tree delete leaves the earlier trees deleted; the returned
// error says where it stopped.
package transfer
