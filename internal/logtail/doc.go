// Package logtail reads recent entries from the viewer's log file.
//
// The TUI logs to a file so nothing is written over the alternate screen;
// the log overlay (L) uses Tail to show the newest entries, such as followed
// slide links and failed reloads.
//
// Lines written by zap's JSON encoder are decoded into Entry values; any
// other line is kept verbatim as the message. Read holds at most twice
// maxLines in memory while scanning, so large logs are cheap to tail.
package logtail
