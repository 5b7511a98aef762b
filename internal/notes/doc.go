// Package notes parses spreadsheet-exported cooldown timelines and derives
// the per-raider, non-roster, and ERT-encapsulated variants of them.
//
// An event line is a header (boss ability name and timestamp) followed by
// zero or more assignment tokens, each a color-coded raider name plus a
// spell reference. The package owns the regex extraction of both parts, the
// per-raider splitting, the roster stripping, and the synthesis of ERT
// visibility tags that hide each assignment from everyone but its owner and,
// policy permitting, the raid lead.
//
// All transforms are pure over an in-memory line sequence; reading the
// export and writing the derived files belongs to the pipeline package.
package notes
