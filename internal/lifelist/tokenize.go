package lifelist

import "strings"

// SplitLine splits one line of comma-separated text into raw field values.
//
// Fields may be wrapped in double quotes, in which case commas are literal and
// a doubled quote ("") stands for one quote character. A quote that is not
// doubled toggles quoting wherever it appears. The last field is always
// emitted, so an empty line yields a single empty field. An unterminated
// quote is closed by the end of the line. SplitLine never fails.
func SplitLine(line string) []string {
	fields := make([]string, 0, strings.Count(line, ",")+1)
	var field strings.Builder
	inQuotes := false

	// '"' and ',' are ASCII, so scanning bytes never splits a UTF-8 sequence.
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, field.String())
}
