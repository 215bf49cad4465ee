package calendar

import "regexp"

// The label is everything before the first date, matched as short as possible
var dateRangeRe = regexp.MustCompile(`(?i)^(.*?)` + writtenDateExpr + `\s+(?:through|thru)\s+` + writtenDateExpr)

// WrittenRange is an inclusive "<label><start> through <end>" span found in a line
type WrittenRange struct {
	Label string
	Start WrittenDate
	End   WrittenDate
	Text  string // label and both dates, verbatim
}

// FindRange returns the first date range in line
func FindRange(line string) (WrittenRange, bool) {
	loc := dateRangeRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return WrittenRange{}, false
	}

	return WrittenRange{
		Label: line[loc[2]:loc[3]],
		Start: writtenFromSubmatch(line, loc, 2),
		End:   writtenFromSubmatch(line, loc, 2+groupsPerDate),
		Text:  line[loc[0]:loc[1]],
	}, true
}
