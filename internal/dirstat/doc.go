// Package dirstat computes and caches size and file-count statistics of
// directory trees.
//
// A directory's stat is persisted in a sidecar file ([FileName]) inside the
// directory it describes:
//
//	{"size": 10485760, "count": 312}
//
// # Trust Model
//
// A readable sidecar is authoritative. It is never validated against the
// live tree; it is only corrected by overwriting it ([WriteCache]) or by
// deleting the directory. Callers that know a directory is changing (the
// live save) must use [Get] with useCache=false.
//
// # Failure Policy
//
// Scanning is best effort: entries that cannot be read are skipped and
// contribute nothing. Sidecar read failures are reported as [ErrNoCache] and
// sidecar write failures never break a caller.
package dirstat
