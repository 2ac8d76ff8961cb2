package sqldump

import (
	"encoding/hex"
	"strings"
)

// storageMarkers are literal prefixes indicating the true content lives
// in external storage and is not resolvable from the dump alone.
// Such literals are passed through undecoded.
var storageMarkers = []string{"gzip:", "utf-8:"}

// DecodeContent returns a best-effort decoded form of one raw text
// literal (already quote-stripped). Hex-encoded blobs (0x…) are decoded
// to text with invalid byte sequences dropped; on any decode failure the
// original literal is returned unchanged. External storage markers are
// returned as-is. Anything else has its SQL backslash escapes rewritten.
// DecodeContent never fails.
func DecodeContent(raw string) string {
	if strings.HasPrefix(raw, "0x") {
		decoded, err := hex.DecodeString(raw[2:])
		if err != nil {
			return raw
		}
		return strings.ToValidUTF8(string(decoded), "")
	}

	for _, marker := range storageMarkers {
		if strings.HasPrefix(raw, marker) {
			return raw
		}
	}

	return Unescape(raw)
}

// Unescape rewrites SQL backslash escape sequences: escaped single
// quote, escaped double quote, then escaped backslash, in that order.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\'`, `'`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// Unquote removes a matching pair of surrounding quote characters from a
// literal and collapses doubled interior quotes of the same character,
// per SQL quoting rules ('it''s' becomes it's). Literals without
// surrounding quotes are returned unchanged.
func Unquote(s string) string {
	if len(s) >= 2 {
		q := s[0]
		if (q == '\'' || q == '"') && s[len(s)-1] == q {
			inner := s[1 : len(s)-1]
			return strings.ReplaceAll(inner, string([]byte{q, q}), string(q))
		}
	}
	return s
}
