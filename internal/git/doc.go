// Package git inspects the repository that holds the model files: it locates
// the worktree root, reads the checked-out revision for reports, and derives
// a raw-content base URL hint from the origin remote.
//
// Everything is read-only and local; nothing is fetched.
package git
