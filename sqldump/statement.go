package sqldump

import "strings"

const insertPrefix = "INSERT INTO"

// Statements returns every complete `INSERT INTO <table> ... ;` block
// for the named table. Matching is case-insensitive and statement bodies
// may span multiple lines. Statements for other tables are never
// returned: the table name must be backtick-quoted or followed by a
// non-identifier character, so "page" does not match "page_props".
//
// Known limitations, kept deliberately narrow: the statement boundary is
// the first semicolon after the INSERT keyword, so a literal containing
// an unescaped `;` truncates the statement early, and a trailing
// statement without a terminating `;` is silently dropped.
func Statements(dump, table string) []string {
	var stmts []string
	pos := 0
	for {
		i := indexFold(dump[pos:], insertPrefix)
		if i < 0 {
			break
		}
		start := pos + i
		j := start + len(insertPrefix)
		pos = j

		for j < len(dump) && isSpace(dump[j]) {
			j++
		}

		quoted := false
		if j < len(dump) && dump[j] == '`' {
			quoted = true
			j++
		}

		if !hasPrefixFold(dump[j:], table) {
			continue
		}
		k := j + len(table)

		if quoted {
			if k >= len(dump) || dump[k] != '`' {
				continue
			}
		} else if k < len(dump) && isIdentByte(dump[k]) {
			continue
		}

		end := strings.IndexByte(dump[start:], ';')
		if end < 0 {
			break
		}
		stmts = append(stmts, dump[start:start+end+1])
		pos = start + end + 1
	}
	return stmts
}

// Tuples locates the VALUES clause of one INSERT statement and returns
// the interior of each parenthesized value group, in order. Groups are
// found by a simple non-nested parenthesis match; a literal containing
// an unescaped `)` breaks its group. Empty groups are skipped.
func Tuples(stmt string) []string {
	i := indexFold(stmt, "VALUES")
	if i < 0 {
		return nil
	}
	body := stmt[i+len("VALUES"):]

	var groups []string
	for {
		open := strings.IndexByte(body, '(')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(body[open+1:], ')')
		if closing < 0 {
			break
		}
		if group := body[open+1 : open+1+closing]; group != "" {
			groups = append(groups, group)
		}
		body = body[open+1+closing+1:]
	}
	return groups
}

// Case folding is ASCII-only and byte-based: the SQL keywords and table
// names being matched are ASCII, and folding bytes in place keeps every
// index valid in the original dump, whose literals are arbitrary UTF-8.

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// hasPrefixFold reports whether s starts with prefix under ASCII case
// folding.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if foldByte(s[i]) != foldByte(prefix[i]) {
			return false
		}
	}
	return true
}

// indexFold returns the byte index of the first occurrence of substr in
// s under ASCII case folding, or -1.
func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if hasPrefixFold(s[i:], substr) {
			return i
		}
	}
	return -1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isIdentByte(b byte) bool {
	b = foldByte(b)
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
