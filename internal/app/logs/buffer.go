package logs

import (
	"time"
	"unicode/utf8"
)

// Buffer limits, counted in characters
const (
	MaxLogChars  = 200_000
	TrimLogChars = 150_000

	// TruncationNotice is placed once above the kept tail whenever the buffer is trimmed
	TruncationNotice = "... log too long, truncated; showing the latest output only ..."
)

const (
	DefaultPageSize = 50
	RefreshInterval = 2000 * time.Millisecond
)

// appendCapped appends content and trims the front once the buffer passes MaxLogChars
func appendCapped(buffer, content string) (string, bool) {
	if content == "" {
		return buffer, false
	}

	buffer += content

	if len(buffer) <= MaxLogChars || utf8.RuneCountInString(buffer) <= MaxLogChars {
		return buffer, false
	}

	return TruncationNotice + "\n" + lastChars(buffer, TrimLogChars), true
}

// lastChars returns the last n characters of s without splitting a rune
func lastChars(s string, n int) string {
	i := len(s)
	for count := 0; count < n && i > 0; count++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}

	return s[i:]
}

// prependHistory puts an older page above the buffer, separated by a line break only when both are non-empty
func prependHistory(buffer, content string) string {
	if content == "" {
		return buffer
	}

	if buffer == "" {
		return content
	}

	return content + "\n" + buffer
}
