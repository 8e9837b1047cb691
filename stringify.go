package yenc

import "strings"

var templateEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)

// Stringify escapes backslashes, backticks and "${" so that s can be pasted
// between backticks in JavaScript source and read back unchanged.
func Stringify(s string) string {
	return templateEscaper.Replace(s)
}
