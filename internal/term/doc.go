// Package term owns the interactive session's terminal output.
//
// A [Terminal] is the single writer for everything the session prints. It
// remembers how many lines the last transient write produced so that the
// next write can erase them first:
//
//	h := t.Write("Loading...")
//	h.ScheduleErase()
//	// ... compute the listing ...
//	t.Write(listing) // erases "Loading..." and prints the listing
//
// Only one erase can be pending at a time; scheduling a second one before the
// first is consumed replaces it. Erase sequences are only emitted when the
// writer is a terminal, but the pending count is consumed either way so that
// piped output stays a plain append-only log.
package term
