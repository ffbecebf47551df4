package render

import "strings"

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes text content for inclusion in OOXML parts.
func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
