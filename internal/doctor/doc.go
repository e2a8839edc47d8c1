// Package doctor diagnoses and optionally repairs the save store.
//
// The doctor package detects:
//
//   - Path issues: a missing save store directory or live save.
//
//   - Sidecar issues: named saves whose stat sidecar is missing, unreadable
//     or stale (its totals differ from a fresh scan). Stale sidecars are the
//     one thing listings never notice on their own because a readable
//     sidecar is trusted as is.
//
//   - Store issues: files in the store that are not save directories, and
//     a sidecar inside the live save.
//
// # Usage
//
//	err := doctor.Run(ctx, store, false) // check only
//	err := doctor.Run(ctx, store, true)  // check and fix
//
// Each [Issue] includes a description and the fix action --fix would apply.
package doctor
