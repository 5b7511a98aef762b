// Package pipeline orchestrates one ertnotes run: it reads the exported
// timeline once, normalizes it, and drives the three independent transforms
// (per-assignee split, roster strip, visibility encapsulation) over the
// shared line sequence into their output files.
//
// The source is read in full before any output file is truncated, so a
// missing export never destroys previous results. A file lock on the output
// directory keeps concurrent runs from interleaving writes.
package pipeline
