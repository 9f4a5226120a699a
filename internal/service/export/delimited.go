package export

import "strings"

// Delimiter used by all delimited-text artifacts.
const Delimiter = ","

// RenderDelimited produces a delimited-text document: one header row, then
// one row per record, fields joined by the delimiter. A field containing
// the delimiter is wrapped in double quotes; nothing else is escaped. The
// format is fixed byte-for-byte so exports round-trip.
func RenderDelimited(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, headers)
	for _, row := range rows {
		b.WriteString("\n")
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(Delimiter)
		}
		if strings.Contains(f, Delimiter) {
			b.WriteString(`"`)
			b.WriteString(f)
			b.WriteString(`"`)
		} else {
			b.WriteString(f)
		}
	}
}
