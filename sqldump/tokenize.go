package sqldump

import "strings"

// SplitValues splits the interior of one value group into its ordered
// literal fields. It performs a single left-to-right scan tracking
// whether the cursor is inside a quoted literal and which quote
// character (' or ") opened it:
//
//   - commas split fields only outside quotes
//   - a doubled quote character inside quotes is an escaped quote
//     literal; both characters are kept and the scan stays in quoted mode
//   - fields are trimmed of surrounding whitespace; a trailing field is
//     flushed only if non-empty after trimming
//
// Every downstream mapping depends on these boundaries being correct for
// arbitrary page text containing commas, quotes, and escaped quotes.
func SplitValues(group string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	var quoteChar byte

	for i := 0; i < len(group); i++ {
		ch := group[i]
		switch {
		case !inQuotes && (ch == '\'' || ch == '"'):
			inQuotes = true
			quoteChar = ch
			cur.WriteByte(ch)

		case inQuotes && ch == quoteChar:
			if i+1 < len(group) && group[i+1] == quoteChar {
				cur.WriteByte(ch)
				cur.WriteByte(ch)
				i++
			} else {
				inQuotes = false
				cur.WriteByte(ch)
			}

		case !inQuotes && ch == ',':
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()

		default:
			cur.WriteByte(ch)
		}
	}

	if last := strings.TrimSpace(cur.String()); last != "" {
		fields = append(fields, last)
	}
	return fields
}
