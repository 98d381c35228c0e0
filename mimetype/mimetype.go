package mimetype

import (
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

// IsText sniffs the leading bytes of a batch input and reports whether it
// looks like plain text. Unknown content is assumed to be text; binary
// formats with recognizable magic are rejected.
func IsText(peek []byte) bool {
	if len(peek) == 0 {
		return true
	}

	mime := mimemagic.Match("", peek)
	if mime == "" {
		return true
	}

	return strings.HasPrefix(mime, "text")
}
