// Package cli provides the clipdir command line.
//
// It resolves configuration, builds a logger on stderr and dispatches to the
// history operations:
//
//	clipdir store   (-s)  save stdin as the newest entry
//	clipdir list    (-l)  print "{id}\t{preview}" lines, newest first
//	clipdir decode  (-d)  read a selected line on stdin, print that entry
//
// store is meant to be run by a clipboard watcher such as
// "wl-paste --watch clipdir store"; it honours the CLIPBOARD_STATE variable
// that wl-paste exports. list and decode pair with a menu program:
//
//	clipdir list | dmenu | clipdir decode | wl-copy
package cli
