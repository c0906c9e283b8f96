package logging

import (
	"log/slog"
	"strings"
)

// LevelFromString parses level names case-insensitively, offsets like
// "WARN-2" included. Nil and unknown names give INFO.
func LevelFromString(str *string) slog.Level {
	if str == nil {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(*str))); err != nil {
		return slog.LevelInfo
	}
	return level
}
