// Package report persists a history of completed runs in a small SQLite
// database under the log directory, so operators can see what each export
// produced and when malformed input started appearing.
package report
