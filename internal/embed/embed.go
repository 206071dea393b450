// Package embed provides the embedded .cursorignore payload.
package embed

import (
	"embed"
	"strings"
)

//go:embed assets/*

// Assets contains all embedded files.
var Assets embed.FS

// GetRawPayload returns the ignore-list exactly as it is stored in assets.
func GetRawPayload() (string, error) {
	data, err := Assets.ReadFile("assets/cursorignore")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetPayload returns the ignore-list as it is written to disk:
// surrounding whitespace trimmed and exactly one trailing newline.
func GetPayload() ([]byte, error) {
	raw, err := GetRawPayload()
	if err != nil {
		return nil, err
	}
	return []byte(Normalize(raw)), nil
}

// Normalize trims surrounding whitespace and appends a single newline.
func Normalize(content string) string {
	return strings.TrimSpace(content) + "\n"
}
