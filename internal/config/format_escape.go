package config

import "strings"

// UnescapeFormat unescapes \n, \t, and \\ sequences in a -f/-i format
// string, matching original_source's --backslash-escapes behaviour. It is
// a pure string-preprocessing step that runs before a format string
// reaches the (external) formatter; it never touches the rounding core.
func UnescapeFormat(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
