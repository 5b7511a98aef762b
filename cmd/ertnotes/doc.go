// Command ertnotes turns a spreadsheet-exported raid cooldown timeline into
// per-raider files, a non-roster file, and an ERT note where every
// assignment is visible only to its owner.
package main
