// Package saves lists the named saves in the save store and resolves the
// index, range and name tokens users type to address them.
//
// # Ordering and Addressing
//
// Saves are ordered by creation time, oldest first, and addressed by their
// 1-based position in that order. A range token is "start..end" with both
// ends inclusive; either side may be omitted ("..3", "2.."). Positions are
// only meaningful against the list they were shown from, so callers resolve
// tokens against the exact list they printed.
//
// # Current Save
//
// The live save directory is described by a [Save] with an empty name. It is
// always scanned, never cached, because the game rewrites it while playing.
// A named save "is current" when its size and file count equal the live
// save's ([IsCurrent]). Two different saves with identical totals are
// indistinguishable by this check.
package saves
