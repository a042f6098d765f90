package connector

import (
	"fmt"
	"regexp"
	"strings"
)

// Range is the structured form of an A1 notation range e.g. 'Sample Sheet!A:B'. Either
// field may be empty: 'Sheet1' selects the whole sheet and 'A1:B3' selects cells on the
// first visible sheet.
type Range struct {
	Sheet string
	Cells string
}

var (
	qualified = regexp.MustCompile(`^(?:'((?:[^']|'')+)'|([^'!][^!]*))!(.*)$`)
	sheetOnly = regexp.MustCompile(`^(?:'((?:[^']|'')+)'|([^'!][^!]*))$`)
	cellsOnly = regexp.MustCompile(`^(?:[A-Za-z]{1,3}[0-9]+|[A-Za-z]{1,3}[0-9]*:[A-Za-z]{1,3}[0-9]*|[0-9]+:[0-9]+)$`)
)

func ParseRange(area string) (Range, error) {
	s := strings.TrimSpace(area)

	if match := qualified.FindStringSubmatch(s); match != nil {
		return Range{
			Sheet: unquote(match[1], match[2]),
			Cells: strings.TrimSpace(match[3]),
		}, nil
	}

	if cellsOnly.MatchString(s) {
		return Range{Cells: s}, nil
	}

	if match := sheetOnly.FindStringSubmatch(s); match != nil {
		return Range{Sheet: unquote(match[1], match[2])}, nil
	}

	return Range{}, fmt.Errorf("invalid range '%s' - expected something like 'Sheet1!A1:B3', 'Sheet1' or 'A1:B3'", area)
}

func (r Range) String() string {
	if r.Sheet == "" {
		return r.Cells
	}

	sheet := r.Sheet
	if strings.ContainsAny(sheet, "'!") || cellsOnly.MatchString(sheet) || strings.TrimSpace(sheet) != sheet {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}

	if r.Cells == "" {
		return sheet
	}

	return fmt.Sprintf("%s!%s", sheet, r.Cells)
}

func unquote(quoted, plain string) string {
	if quoted != "" {
		return strings.ReplaceAll(quoted, "''", "'")
	}

	return plain
}
