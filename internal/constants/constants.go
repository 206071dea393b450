// Package constants defines shared constants used throughout cursorignore.
package constants

import "os"

// Status markers
const (
	EmojiCreated = "✅"
	EmojiSkipped = "⏭️"
)

// Directory and file names
const (
	IgnoreFileName = ".cursorignore"
)

// IgnoreFileMode is the permission set for a newly created ignore file.
const IgnoreFileMode os.FileMode = 0644

// Environment variables
const (
	// EnvDebug enables debug output on stderr when set to "1".
	EnvDebug = "CURSORIGNORE_DEBUG"
	// EnvLogFile, when set, is the path of a log file to append to.
	EnvLogFile = "CURSORIGNORE_LOG"
)

// Status line templates. The argument is the ignore file name.
const (
	MsgCreated = "%s created."
	MsgSkipped = "%s already exists, skipping creation."
)
